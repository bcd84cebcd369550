// Package rolling splits a series into low- and high-frequency bands with a
// centered rolling mean.
//
// The low band at sample t is the mean of the W samples
// [t-W/2, t-W/2+W-1] (integer division). It is missing within W/2 samples
// of either end of the series and wherever any sample of the window is
// missing; partial windows are never averaged. The high band is the
// residual value - low, missing wherever either operand is missing, so that
// low + high reconstructs the input wherever both are present.
//
// # Usage
//
//	d, err := rolling.Decompose(values, valid, rolling.DefaultWindow)
//	// d.Low.Values, d.Low.Valid, d.High.Values, d.High.Valid
//
//	low, high, err := rolling.DecomposeGrid(series.DropEmptyTimes(), 15)
package rolling
