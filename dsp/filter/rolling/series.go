package rolling

import (
	"github.com/cwbudde/algo-climate/grid"
)

// DecomposeGrid decomposes every cell of a gridded series along time. The
// bands are canonical and keep the axes and attributes of s.
func DecomposeGrid(s *grid.Series, window int) (low, high *grid.Series, err error) {
	c, err := s.Canonical()
	if err != nil {
		return nil, nil, err
	}
	if window < 1 {
		return nil, nil, ErrInvalidWindow
	}

	low, high = c.Clone(), c.Clone()
	nt, cells := c.NumTime(), c.NumLat()*c.NumLon()
	values := make([]float64, nt)
	valid := make([]bool, nt)
	for k := range cells {
		for t := range nt {
			values[t] = c.Values[t*cells+k]
			valid[t] = c.Valid[t*cells+k]
		}
		d, err := Decompose(values, valid, window)
		if err != nil {
			return nil, nil, err
		}
		for t := range nt {
			low.Values[t*cells+k], low.Valid[t*cells+k] = d.Low.Values[t], d.Low.Valid[t]
			high.Values[t*cells+k], high.Valid[t*cells+k] = d.High.Values[t], d.High.Valid[t]
		}
	}
	return low, high, nil
}
