package rolling_test

import (
	"fmt"

	"github.com/cwbudde/algo-climate/dsp/filter/rolling"
)

func ExampleDecompose() {
	values := []float64{1, 3, 2, 6, 4, 5, 9}
	valid := []bool{true, true, true, true, true, true, true}

	d, err := rolling.Decompose(values, valid, 3)
	if err != nil {
		panic(err)
	}
	for i := range values {
		if !d.Low.Valid[i] {
			fmt.Printf("t=%d  low=   -  high=   -\n", i)
			continue
		}
		fmt.Printf("t=%d  low=%.2f  high=%.2f\n", i, d.Low.Values[i], d.High.Values[i])
	}
	// Output:
	// t=0  low=   -  high=   -
	// t=1  low=2.00  high=1.00
	// t=2  low=3.67  high=-1.67
	// t=3  low=4.00  high=2.00
	// t=4  low=5.00  high=-1.00
	// t=5  low=6.00  high=-1.00
	// t=6  low=   -  high=   -
}
