package spectrum

import "math"

// Frequencies returns the frequency of each of the n bins of a transform of
// samples spaced d apart: k/(n·d) for k < ceil(n/2), (k-n)/(n·d) above.
func Frequencies(n int, d float64) []float64 {
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	scale := 1 / (float64(n) * d)
	half := (n + 1) / 2
	for k := range out {
		if k < half {
			out[k] = float64(k) * scale
		} else {
			out[k] = float64(k-n) * scale
		}
	}
	return out
}

// Periods returns 1/f for each frequency, +Inf where f is zero.
func Periods(freq []float64) []float64 {
	out := make([]float64, len(freq))
	for k, f := range freq {
		if f == 0 {
			out[k] = math.Inf(1)
			continue
		}
		out[k] = 1 / f
	}
	return out
}
