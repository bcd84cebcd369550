package climatology

import (
	"fmt"

	"github.com/cwbudde/algo-climate/grid"
)

// MonthsPerYear is the cycle length of the climatology.
const MonthsPerYear = 12

// Climatology holds the per-cell mean of every calendar month.
type Climatology struct {
	nlat, nlon int
	mean       [MonthsPerYear][]float64
	valid      [MonthsPerYear][]bool
	counts     [MonthsPerYear][]int
}

// Compute builds the monthly climatology of a gridded series, ignoring
// missing samples. The series is read in canonical order; other axis orders
// are transposed first.
func Compute(s *grid.Series) (*Climatology, error) {
	s, err := canonical(s)
	if err != nil {
		return nil, err
	}

	cells := s.NumLat() * s.NumLon()
	c := &Climatology{nlat: s.NumLat(), nlon: s.NumLon()}
	for m := range MonthsPerYear {
		c.mean[m] = make([]float64, cells)
		c.valid[m] = make([]bool, cells)
		c.counts[m] = make([]int, cells)
	}

	for t, ts := range s.Coords.Time {
		m := grid.MonthOf(ts) - 1
		sum, count := c.mean[m], c.counts[m]
		base := t * cells
		for k := range cells {
			if s.Valid[base+k] {
				sum[k] += s.Values[base+k]
				count[k]++
			}
		}
	}

	for m := range MonthsPerYear {
		for k, n := range c.counts[m] {
			if n > 0 {
				c.mean[m][k] /= float64(n)
				c.valid[m][k] = true
			}
		}
	}
	return c, nil
}

// At returns the climatology of month (1-12) at cell (i, j) and whether any
// sample contributed to it.
func (c *Climatology) At(month, i, j int) (float64, bool) {
	k := i*c.nlon + j
	return c.mean[month-1][k], c.valid[month-1][k]
}

// Count returns the number of samples averaged for month (1-12) at (i, j).
func (c *Climatology) Count(month, i, j int) int {
	return c.counts[month-1][i*c.nlon+j]
}

// Anomalies subtracts the climatology of each sample's calendar month. The
// result is canonical and shares the source's axes and attributes.
func Anomalies(s *grid.Series, c *Climatology) (*grid.Series, error) {
	out, err := canonical(s)
	if err != nil {
		return nil, err
	}
	if out.NumLat() != c.nlat || out.NumLon() != c.nlon {
		return nil, fmt.Errorf("%w: climatology is %dx%d, series %s is %dx%d",
			grid.ErrShapeMismatch, c.nlat, c.nlon, s.Name, out.NumLat(), out.NumLon())
	}

	cells := c.nlat * c.nlon
	for t, ts := range out.Coords.Time {
		m := grid.MonthOf(ts) - 1
		mean, valid := c.mean[m], c.valid[m]
		base := t * cells
		for k := range cells {
			if out.Valid[base+k] && valid[k] {
				out.Values[base+k] -= mean[k]
			} else {
				out.Values[base+k] = 0
				out.Valid[base+k] = false
			}
		}
	}
	return out, nil
}

// canonical returns a (time, lat, lon) copy of s so that callers never
// mutate the source.
func canonical(s *grid.Series) (*grid.Series, error) {
	if !s.IsGridded() {
		return nil, fmt.Errorf("%w: %s has dims %v", ErrSkipped, s.Name, s.Dims)
	}
	return s.Canonical()
}
