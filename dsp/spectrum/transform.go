package spectrum

import (
	"errors"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrEmptyInput is returned when transforming an empty series.
var ErrEmptyInput = errors.New("spectrum: empty input")

// Transform returns the forward DFT of x:
//
//	X[k] = sum_{t=0}^{n-1} x[t] * exp(-2πi·k·t/n)
func Transform(x []float64) ([]complex128, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return DFT(x), nil //nolint:nilerr
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return DFT(x), nil //nolint:nilerr
	}
	return out, nil
}

// DFT evaluates the forward transform directly. It accepts every length and
// serves the ones the FFT planner rejects.
func DFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	step := -2 * math.Pi / float64(n)
	for k := range out {
		var acc complex128
		for t, v := range x {
			// Reduce k*t mod n to keep the phase argument small.
			phase := step * float64((k*t)%n)
			acc += complex(v, 0) * cmplx.Exp(complex(0, phase))
		}
		out[k] = acc
	}
	return out
}
