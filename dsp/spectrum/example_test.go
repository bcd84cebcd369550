package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-climate/dsp/spectrum"
)

func ExampleTransform() {
	// Two cycles over eight samples.
	x := []float64{1, 0, -1, 0, 1, 0, -1, 0}
	X, err := spectrum.Transform(x)
	if err != nil {
		panic(err)
	}
	power := spectrum.Power(X)
	periods := spectrum.Periods(spectrum.Frequencies(len(x), 1))
	for k := 1; k < len(x)/2; k++ {
		fmt.Printf("period %.2f  power %.1f\n", periods[k], power[k])
	}
	// Output:
	// period 8.00  power 0.0
	// period 4.00  power 16.0
	// period 2.67  power 0.0
}

func ExampleFrequencies() {
	fmt.Println(spectrum.Frequencies(6, 1))
	// Output:
	// [0 0.16666666666666666 0.3333333333333333 -0.5 -0.3333333333333333 -0.16666666666666666]
}
