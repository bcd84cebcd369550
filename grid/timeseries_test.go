package grid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-climate/grid"
)

func TestTimeSeriesDense(t *testing.T) {
	ts := grid.NewTimeSeries("box", nil, []float64{1, 2, 3})
	assert.True(t, ts.Complete())
	assert.Equal(t, 3, ts.CountValid())

	dense, err := ts.Dense()
	require.NoError(t, err)
	dense[0] = 42
	assert.Equal(t, 1.0, ts.Values[0], "Dense must copy")

	ts.Valid[1] = false
	assert.False(t, ts.Complete())
	_, err = ts.Dense()
	assert.ErrorIs(t, err, grid.ErrMissingValues)
}

func TestTimeWindowContains(t *testing.T) {
	jan := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2000, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		w    grid.TimeWindow
		t    time.Time
		want bool
	}{
		{name: "unbounded", w: grid.TimeWindow{}, t: jan, want: true},
		{name: "start inclusive", w: grid.TimeWindow{Start: jan, End: jun}, t: jan, want: true},
		{name: "end inclusive", w: grid.TimeWindow{Start: jan, End: jun}, t: jun, want: true},
		{name: "before", w: grid.TimeWindow{Start: jun}, t: jan, want: false},
		{name: "after", w: grid.TimeWindow{End: jan}, t: jun, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.w.Contains(tt.t))
		})
	}
}

func TestTimeWindowString(t *testing.T) {
	assert.Equal(t, "[all]", grid.TimeWindow{}.String())
	w := grid.TimeWindow{Start: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "[1990-01-01, ...]", w.String())
}

func TestDataset(t *testing.T) {
	ds := grid.NewDataset()
	ds.Add(grid.New("t2m", nil, nil, nil))
	ds.Add(grid.New("sst", nil, nil, nil))

	assert.Equal(t, []string{"sst", "t2m"}, ds.Names())
	assert.Equal(t, 2, ds.Len())

	s, err := ds.Get("sst")
	require.NoError(t, err)
	assert.Equal(t, "sst", s.Name)

	_, err = ds.Get("precip")
	assert.ErrorIs(t, err, grid.ErrUnknownVariable)
}
