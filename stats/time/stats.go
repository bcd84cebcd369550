// Package time computes temporal statistics of masked series and per-cell
// standard-deviation maps of gridded fields.
package time

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-climate/grid"
)

// Stats holds statistics over the present samples of a series.
//
// Fields that need more samples than are present are NaN: Mean, Min, Max
// and Variance need one, SampleVariance and StdDev need two.
type Stats struct {
	Length         int // samples seen, present or missing
	Count          int // present samples
	Mean           float64
	Variance       float64 // population variance
	SampleVariance float64 // variance with one delta degree of freedom
	StdDev         float64 // sqrt(SampleVariance)
	Max            float64
	MaxPos         int
	Min            float64
	MinPos         int
}

// Calculate computes Stats in a single pass using Welford's online
// algorithm. A nil valid mask treats every sample as present.
func Calculate(values []float64, valid []bool) Stats {
	var s StreamingStats
	s.Update(values, valid)
	return s.Result()
}

// StreamingStats accumulates Stats over successive blocks.
type StreamingStats struct {
	length int
	n      int
	mean   float64
	m2     float64
	maxVal float64
	maxPos int
	minVal float64
	minPos int
}

// Update adds a block of samples. A nil valid mask treats every sample as
// present.
func (s *StreamingStats) Update(values []float64, valid []bool) {
	for i, x := range values {
		if valid == nil || valid[i] {
			s.Add(x)
		} else {
			s.length++
		}
	}
}

// Add adds one present sample.
func (s *StreamingStats) Add(x float64) {
	pos := s.length
	s.length++
	s.n++

	delta := x - s.mean
	s.mean += delta / float64(s.n)
	s.m2 += delta * (x - s.mean)

	if s.n == 1 || x > s.maxVal {
		s.maxVal = x
		s.maxPos = pos
	}
	if s.n == 1 || x < s.minVal {
		s.minVal = x
		s.minPos = pos
	}
}

// Result computes the final statistics from accumulated data.
func (s *StreamingStats) Result() Stats {
	nan := math.NaN()
	out := Stats{
		Length:         s.length,
		Count:          s.n,
		Mean:           nan,
		Variance:       nan,
		SampleVariance: nan,
		StdDev:         nan,
		Max:            nan,
		MaxPos:         -1,
		Min:            nan,
		MinPos:         -1,
	}
	if s.n == 0 {
		return out
	}

	nf := float64(s.n)
	out.Mean = s.mean
	out.Variance = s.m2 / nf
	out.Max, out.MaxPos = s.maxVal, s.maxPos
	out.Min, out.MinPos = s.minVal, s.minPos
	if s.n > 1 {
		out.SampleVariance = s.m2 / (nf - 1)
		out.StdDev = math.Sqrt(out.SampleVariance)
	}
	return out
}

// StdDevMap returns the per-cell temporal standard deviation (one delta
// degree of freedom) of a gridded series as a (lat, lon) series. Cells with
// fewer than two present samples are missing.
func StdDevMap(s *grid.Series) (*grid.Series, error) {
	c, err := s.Canonical()
	if err != nil {
		return nil, err
	}

	out, err := grid.NewWithDims(c.Name, []string{grid.DimLat, grid.DimLon}, grid.Coords{
		Lat: c.Coords.Lat,
		Lon: c.Coords.Lon,
	})
	if err != nil {
		return nil, fmt.Errorf("time: std-dev map of %s: %w", s.Name, err)
	}
	out.Attrs = c.Attrs.Clone()

	cells := c.NumLat() * c.NumLon()
	acc := make([]StreamingStats, cells)
	for t := range c.NumTime() {
		base := t * cells
		for k := range acc {
			if c.Valid[base+k] {
				acc[k].Add(c.Values[base+k])
			} else {
				acc[k].length++
			}
		}
	}
	for k := range acc {
		if r := acc[k].Result(); r.Count >= 2 {
			out.Values[k] = r.StdDev
			out.Valid[k] = true
		}
	}
	return out, nil
}
