package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-climate/grid"
	"github.com/cwbudde/algo-climate/internal/testutil"
)

func numbered(nt, nlat, nlon int) *grid.Series {
	return testutil.Grid("v", nt, nlat, nlon, 0, func(t, i, j int) float64 {
		return float64(100*t + 10*i + j)
	})
}

func TestNewIsAllMissing(t *testing.T) {
	s := grid.New("sst", testutil.MonthlyTimes(2000, 2), []float64{0, 1}, []float64{10, 20, 30})

	require.NoError(t, s.Validate())
	assert.True(t, s.IsCanonical())
	assert.Len(t, s.Values, 12)
	for _, ok := range s.Valid {
		assert.False(t, ok)
	}
}

func TestNewWithDimsUnknownAxis(t *testing.T) {
	_, err := grid.NewWithDims("x", []string{"depth", grid.DimLat}, grid.Coords{Lat: []float64{1}})
	assert.ErrorIs(t, err, grid.ErrUnknownDim)

	s, err := grid.NewWithDims("x", []string{"depth", grid.DimLat}, grid.Coords{
		Lat:   []float64{1, 2},
		Other: map[string][]float64{"depth": {0, 5, 10}},
	})
	require.NoError(t, err)
	shape, err := s.Shape()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, shape)
	assert.False(t, s.IsGridded())
}

func TestValidateShapeMismatch(t *testing.T) {
	s := numbered(2, 2, 2)
	s.Values = s.Values[:5]
	assert.ErrorIs(t, s.Validate(), grid.ErrShapeMismatch)
}

func TestValidateUnorderedTime(t *testing.T) {
	times := testutil.MonthlyTimes(2000, 3)
	s := grid.New("sst", []time.Time{times[2], times[0], times[1]}, []float64{0}, []float64{0})
	assert.ErrorIs(t, s.Validate(), grid.ErrUnorderedTime)

	_, err := s.Canonical()
	assert.ErrorIs(t, err, grid.ErrUnorderedTime)

	dup := grid.New("sst", []time.Time{times[0], times[0]}, []float64{0}, []float64{0})
	assert.ErrorIs(t, dup.Validate(), grid.ErrUnorderedTime)
}

func TestTransposeRoundTrip(t *testing.T) {
	s := numbered(3, 2, 4)
	s.SetMissing(1, 1, 2)

	lonFirst, err := s.Transpose(grid.DimLon, grid.DimTime, grid.DimLat)
	require.NoError(t, err)
	assert.Equal(t, []string{grid.DimLon, grid.DimTime, grid.DimLat}, lonFirst.Dims)

	// (lon=3, time=2, lat=1) in the permuted layout: ((3*3)+2)*2+1.
	assert.Equal(t, 213.0, lonFirst.Values[23])

	back, err := lonFirst.Canonical()
	require.NoError(t, err)
	assert.Equal(t, s.Values, back.Values)
	assert.Equal(t, s.Valid, back.Valid)
	assert.True(t, back.SameAxes(s))
}

func TestTransposeRejectsBadOrder(t *testing.T) {
	s := numbered(2, 2, 2)
	_, err := s.Transpose(grid.DimTime, grid.DimTime, grid.DimLon)
	assert.ErrorIs(t, err, grid.ErrUnknownDim)

	_, err = s.Transpose(grid.DimTime, grid.DimLat)
	assert.ErrorIs(t, err, grid.ErrUnknownDim)
}

func TestCanonicalRequiresGriddedDims(t *testing.T) {
	s, err := grid.NewWithDims("topo", []string{grid.DimLat, grid.DimLon}, grid.Coords{
		Lat: []float64{0}, Lon: []float64{0},
	})
	require.NoError(t, err)
	_, err = s.Canonical()
	assert.ErrorIs(t, err, grid.ErrUnknownDim)
}

func TestCloneIsDeep(t *testing.T) {
	s := numbered(2, 1, 1)
	s.Attrs[grid.AttrLongName] = "Sea surface temperature"

	c := s.Clone()
	c.Set(0, 0, 0, -1)
	c.Attrs[grid.AttrLongName] = "changed"
	c.Coords.Lat[0] = 99

	v, _ := s.At(0, 0, 0)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, "Sea surface temperature", s.Attrs[grid.AttrLongName])
	assert.Equal(t, -10.0, s.Coords.Lat[0])
}

func TestLongName(t *testing.T) {
	s := numbered(1, 1, 1)
	_, err := s.LongName()
	assert.ErrorIs(t, err, grid.ErrMissingMetadata)

	s.Attrs[grid.AttrLongName] = "Precipitation"
	name, err := s.LongName()
	require.NoError(t, err)
	assert.Equal(t, "Precipitation", name)
}

func TestCell(t *testing.T) {
	s := numbered(4, 2, 3)
	s.SetMissing(2, 1, 2)

	cell := s.Cell(1, 2)
	assert.Equal(t, []float64{12, 112, 0, 312}, cell.Values)
	assert.Equal(t, []bool{true, true, false, true}, cell.Valid)
	assert.Len(t, cell.Time, 4)
}

func TestSelectTimeInclusive(t *testing.T) {
	s := numbered(24, 1, 1)
	w := grid.TimeWindow{
		Start: time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	sel, err := s.SelectTime(w)
	require.NoError(t, err)
	require.Equal(t, 4, sel.NumTime())
	assert.Equal(t, []float64{200, 300, 400, 500}, sel.Values)
	assert.True(t, sel.Coords.Time[0].Equal(w.Start))
	assert.True(t, sel.Coords.Time[3].Equal(w.End))
}

func TestSelectTimeOpenEnded(t *testing.T) {
	s := numbered(24, 1, 1)
	sel, err := s.SelectTime(grid.TimeWindow{Start: time.Date(2001, 10, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, 3, sel.NumTime())

	all, err := s.SelectTime(grid.TimeWindow{})
	require.NoError(t, err)
	assert.Equal(t, 24, all.NumTime())
}

func TestSelectTimeEmpty(t *testing.T) {
	s := numbered(12, 1, 1)
	_, err := s.SelectTime(grid.TimeWindow{
		Start: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(1990, 12, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, grid.ErrEmptySelection)
}

func TestDropEmptyTimes(t *testing.T) {
	s := numbered(4, 2, 2)
	for i := range 2 {
		for j := range 2 {
			s.SetMissing(1, i, j)
		}
	}
	s.SetMissing(3, 0, 0)

	out := s.DropEmptyTimes()
	assert.Equal(t, 3, out.NumTime())
	assert.True(t, out.Coords.Time[1].Equal(s.Coords.Time[2]))
	_, ok := out.At(2, 0, 0)
	assert.False(t, ok)
	assert.Equal(t, 4, s.NumTime(), "source must not change")
}

func TestAttrsLookup(t *testing.T) {
	a := grid.Attrs{"units": "K", "scale": 0.5, "none": nil}

	v, ok := a.Lookup("units")
	assert.True(t, ok)
	assert.Equal(t, "K", v)

	v, ok = a.Lookup("scale")
	assert.True(t, ok)
	assert.Equal(t, "0.5", v)

	_, ok = a.Lookup("none")
	assert.False(t, ok)

	var nilAttrs grid.Attrs
	assert.NotNil(t, nilAttrs.Clone())
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, 2, grid.MonthOf(time.Date(2010, 2, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 12, grid.MonthOf(time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC)))
}
