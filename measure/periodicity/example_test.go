package periodicity_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-climate/measure/periodicity"
)

func ExampleAnalyzer_Analyze() {
	// Ten years of monthly data with an annual cycle.
	x := make([]float64, 120)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * float64(i) / 12)
	}

	res, err := periodicity.NewAnalyzer().Analyze(x)
	if err != nil {
		panic(err)
	}
	for _, p := range res.Periods {
		fmt.Printf("period %.1f months\n", p)
	}
	// Output:
	// period 12.0 months
}
