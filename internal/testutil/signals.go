package testutil

import (
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-climate/grid"
)

// MonthlyTimes returns n consecutive month starts beginning January of
// startYear (UTC).
func MonthlyTimes(startYear, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = time.Date(startYear, time.Month(1+i), 1, 0, 0, 0, 0, time.UTC)
	}
	return out
}

// Axis returns n evenly spaced coordinates starting at start.
func Axis(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DeterministicSine generates a sine with the given period in samples.
func DeterministicSine(period, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates Gaussian white noise with a fixed seed.
func DeterministicNoise(seed uint64, sigma float64, length int) []float64 {
	dist := distuv.Normal{
		Mu:    0,
		Sigma: sigma,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// MonthlyPattern repeats a 12-entry pattern over length samples starting in
// January.
func MonthlyPattern(pattern [12]float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = pattern[i%12]
	}
	return out
}

// Grid builds a canonical monthly series starting January 2000 whose cell
// (i, j) holds fn(t, i, j). The latitude axis starts at -10 and the
// longitude axis at lon0, both with unit spacing.
func Grid(name string, nt, nlat, nlon int, lon0 float64, fn func(t, i, j int) float64) *grid.Series {
	s := grid.New(name, MonthlyTimes(2000, nt), Axis(-10, 1, nlat), Axis(lon0, 1, nlon))
	for t := range nt {
		for i := range nlat {
			for j := range nlon {
				s.Set(t, i, j, fn(t, i, j))
			}
		}
	}
	return s
}
