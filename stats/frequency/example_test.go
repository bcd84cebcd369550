package frequency_test

import (
	"fmt"

	"github.com/cwbudde/algo-climate/stats/frequency"
)

func ExampleThreshold() {
	power := []float64{0, 1, 10, 1, 0, 1, 10, 1}
	fmt.Printf("threshold=%.2f\n", frequency.Threshold(power, 2))

	// Output:
	// threshold=11.12
}

func ExampleFlatness() {
	flat := frequency.Flatness([]float64{0, 1, 1, 1, 1})
	fmt.Printf("flatness=%.1f\n", flat)

	// Output:
	// flatness=1.0
}
