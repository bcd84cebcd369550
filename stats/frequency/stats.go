// Package frequency summarizes power spectra and derives significance
// thresholds from them.
package frequency

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Stats holds statistics of a power spectrum.
type Stats struct {
	BinCount int
	Mean     float64 // mean power over all bins
	StdDev   float64 // population standard deviation of the power
	Max      float64
	MaxBin   int
	Min      float64
	MinBin   int
	Energy   float64 // sum of power
	Flatness float64 // spectral flatness (Wiener entropy), 0..1, DC excluded
}

// Calculate computes statistics over every bin of power (linear scale).
func Calculate(power []float64) Stats {
	n := len(power)
	if n == 0 {
		return Stats{}
	}

	var s Stats
	s.BinCount = n
	s.Mean, s.StdDev = stat.PopMeanStdDev(power, nil)
	s.Min = power[0]
	s.Max = power[0]
	for i, v := range power {
		s.Energy += v
		if v > s.Max {
			s.Max = v
			s.MaxBin = i
		}
		if v < s.Min {
			s.Min = v
			s.MinBin = i
		}
	}
	s.Flatness = Flatness(power)
	return s
}

// Threshold returns mean(power) + sigma·std(power), with the population
// standard deviation taken over every bin.
func Threshold(power []float64, sigma float64) float64 {
	if len(power) == 0 {
		return math.NaN()
	}
	mean, std := stat.PopMeanStdDev(power, nil)
	return mean + sigma*std
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
//
// Flatness = exp(mean(log(P_i))) / mean(P_i)
//
// DC bin (index 0) is excluded from the computation. If all considered bins
// are zero, 0 is returned.
func Flatness(power []float64) float64 {
	n := len(power)
	if n < 2 {
		return 0
	}

	bins := power[1:]
	meanLin := stat.Mean(bins, nil)
	if meanLin == 0 {
		return 0
	}

	// If any bin is zero the geometric mean is zero, so flatness is zero.
	for _, v := range bins {
		if v <= 0 {
			return 0
		}
	}

	return stat.GeometricMean(bins, nil) / meanLin
}
