package time

import (
	"testing"

	"github.com/cwbudde/algo-climate/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	b.ReportAllocs()
	for b.Loop() {
		_ = Calculate(x, nil)
	}
}

func BenchmarkStdDevMap(b *testing.B) {
	s := testutil.Grid("sst", 480, 18, 36, 0, func(t, i, j int) float64 {
		return float64((t*7+i*3+j)%23) * 0.1
	})
	b.ReportAllocs()
	for b.Loop() {
		if _, err := StdDevMap(s); err != nil {
			b.Fatal(err)
		}
	}
}
