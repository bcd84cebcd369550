package spatial

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-climate/dsp/core"
	"github.com/cwbudde/algo-climate/grid"
)

// coordEpsilon absorbs rounding when a coordinate sits on a box edge.
const coordEpsilon = 1e-9

// PositiveLongitudeLimit is the largest longitude of a [-180, 180) axis,
// with one degree of slack.
const PositiveLongitudeLimit = 181

var (
	// ErrEmptySelection is returned when a box or time window selects no
	// data. It wraps grid.ErrEmptySelection.
	ErrEmptySelection = fmt.Errorf("spatial: %w", grid.ErrEmptySelection)

	// ErrInvalidBox is returned when a box minimum exceeds its maximum.
	ErrInvalidBox = errors.New("spatial: box minimum exceeds maximum")
)

// Box is a lat/lon rectangle in degrees, bounds inclusive.
type Box struct {
	LonMin, LonMax float64
	LatMin, LatMax float64
}

// Validate checks that both ranges are ordered.
func (b Box) Validate() error {
	if b.LonMin > b.LonMax || b.LatMin > b.LatMax {
		return fmt.Errorf("%w: %s", ErrInvalidBox, b)
	}
	return nil
}

// Shift returns the box moved by d degrees of longitude.
func (b Box) Shift(d float64) Box {
	b.LonMin += d
	b.LonMax += d
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("lon [%g, %g] lat [%g, %g]", b.LonMin, b.LonMax, b.LatMin, b.LatMax)
}

// UsesPositiveLongitudes reports whether a longitude axis follows the
// [0, 360) convention.
func UsesPositiveLongitudes(lon []float64) bool {
	return len(lon) > 0 && slices.Max(lon) > PositiveLongitudeLimit
}

// Aggregate returns the unweighted mean over box of every time step inside
// window (a zero window keeps all steps). Missing cells are ignored; a step
// without any valid cell in the box is missing.
func Aggregate(s *grid.Series, box Box, window grid.TimeWindow) (grid.TimeSeries, error) {
	if err := box.Validate(); err != nil {
		return grid.TimeSeries{}, err
	}
	c, err := s.Canonical()
	if err != nil {
		return grid.TimeSeries{}, err
	}
	c, err = c.SelectTime(window)
	if err != nil {
		return grid.TimeSeries{}, fmt.Errorf("%w: %v", ErrEmptySelection, err)
	}

	if UsesPositiveLongitudes(c.Coords.Lon) {
		box = box.Shift(360)
	}
	lats := within(c.Coords.Lat, box.LatMin, box.LatMax)
	lons := within(c.Coords.Lon, box.LonMin, box.LonMax)
	if len(lats) == 0 || len(lons) == 0 {
		return grid.TimeSeries{}, fmt.Errorf("%w: %s selects no cells of %s", ErrEmptySelection, box, s.Name)
	}

	nt := c.NumTime()
	out := grid.TimeSeries{
		Name:   s.Name,
		Time:   slices.Clone(c.Coords.Time),
		Values: make([]float64, nt),
		Valid:  make([]bool, nt),
	}
	buf := make([]float64, 0, len(lats)*len(lons))
	for t := range nt {
		buf = buf[:0]
		for _, i := range lats {
			for _, j := range lons {
				if v, ok := c.At(t, i, j); ok {
					buf = append(buf, v)
				}
			}
		}
		if len(buf) > 0 {
			out.Values[t] = stat.Mean(buf, nil)
			out.Valid[t] = true
		}
	}
	return out, nil
}

// within returns the indices of coords inside [lo, hi].
func within(coords []float64, lo, hi float64) []int {
	var idx []int
	for k, v := range coords {
		if (v >= lo || core.NearlyEqual(v, lo, coordEpsilon)) && (v <= hi || core.NearlyEqual(v, hi, coordEpsilon)) {
			idx = append(idx, k)
		}
	}
	return idx
}
