package rolling

import (
	"errors"
	"fmt"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-climate/dsp/core"
)

// DefaultWindow is the rolling window length in samples.
const DefaultWindow = 15

// ErrInvalidWindow is returned for window lengths below one.
var ErrInvalidWindow = errors.New("rolling: window must be >= 1")

// Band is a masked series produced by the decomposition.
type Band struct {
	Values []float64
	Valid  []bool
}

// Decomposition holds the low- and high-frequency bands of one series.
type Decomposition struct {
	Low  Band
	High Band
}

// Margin returns the number of undefined samples at each end of the series
// for the given window.
func Margin(window int) int {
	return window / 2
}

// Mean returns the centered rolling mean of values over window samples.
func Mean(values []float64, valid []bool, window int) (Band, error) {
	if window < 1 {
		return Band{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, window)
	}
	if len(values) != len(valid) {
		return Band{}, fmt.Errorf("rolling: %d values with %d mask entries", len(values), len(valid))
	}

	n := len(values)
	h := Margin(window)
	out := Band{Values: make([]float64, n), Valid: make([]bool, n)}

	// missing[k] counts missing samples in values[:k].
	missing := make([]int, n+1)
	for k, ok := range valid {
		missing[k+1] = missing[k]
		if !ok {
			missing[k+1]++
		}
	}

	scale := 1 / float64(window)
	for t := h; t < n-h; t++ {
		lo := t - h
		hi := lo + window
		if hi > n || missing[hi]-missing[lo] > 0 {
			continue
		}
		out.Values[t] = vecmath.Sum(values[lo:hi]) * scale
		out.Valid[t] = true
	}
	return out, nil
}

// Decompose splits values into the rolling-mean low band and the residual
// high band.
func Decompose(values []float64, valid []bool, window int) (Decomposition, error) {
	low, err := Mean(values, valid, window)
	if err != nil {
		return Decomposition{}, err
	}

	n := len(values)
	high := Band{Values: make([]float64, n), Valid: make([]bool, n)}
	if n > 0 {
		neg := make([]float64, n)
		vecmath.ScaleBlock(neg, low.Values, -1)
		vecmath.AddBlock(high.Values, values, neg)
	}
	for t := range n {
		high.Valid[t] = valid[t] && low.Valid[t]
	}
	high.Valid = core.Remask(high.Values, high.Valid)

	return Decomposition{Low: low, High: high}, nil
}
