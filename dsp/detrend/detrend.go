// Package detrend removes least-squares linear trends from masked series.
package detrend

import (
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-climate/dsp/core"
)

// Fit returns the least-squares line through values against the sample
// index 0..n-1. Series shorter than two samples fit a flat line through
// their mean.
func Fit(values []float64) (intercept, slope float64) {
	n := len(values)
	switch n {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
	}
	return stat.LinearRegression(x, values, nil, false)
}

// Linear removes the fitted linear trend from values.
//
// Missing positions enter the fit as zeros and are masked again in the
// output, so a trend-removed value never appears where the input was
// missing. A fully missing series stays fully missing.
func Linear(values []float64, valid []bool) ([]float64, []bool) {
	out := core.FillMissing(nil, values, valid, 0)
	if core.AllMissing(valid) {
		return out, core.Remask(out, valid)
	}

	intercept, slope := Fit(out)
	for i := range out {
		out[i] -= intercept + slope*float64(i)
	}
	return out, core.Remask(out, valid)
}
