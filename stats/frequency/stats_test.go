package frequency

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-climate/internal/testutil"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// makeFlatSpectrum creates a spectrum where all bins have the same power.
func makeFlatSpectrum(n int, amplitude float64) []float64 {
	return testutil.DC(amplitude, n)
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.BinCount != 0 || s.Mean != 0 || s.Energy != 0 {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}

func TestCalculate(t *testing.T) {
	power := []float64{4, 1, 9, 1, 0}
	s := Calculate(power)

	if s.BinCount != 5 {
		t.Fatalf("BinCount = %d, want 5", s.BinCount)
	}
	if !almostEqual(s.Mean, 3, tolerance) {
		t.Fatalf("Mean = %v, want 3", s.Mean)
	}
	// Population variance: (1+4+36+4+9)/5 = 10.8
	if !almostEqual(s.StdDev, math.Sqrt(10.8), tolerance) {
		t.Fatalf("StdDev = %v, want %v", s.StdDev, math.Sqrt(10.8))
	}
	if s.Max != 9 || s.MaxBin != 2 || s.Min != 0 || s.MinBin != 4 {
		t.Fatalf("extrema = %v@%d %v@%d", s.Max, s.MaxBin, s.Min, s.MinBin)
	}
	if s.Energy != 15 {
		t.Fatalf("Energy = %v, want 15", s.Energy)
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name  string
		power []float64
		sigma float64
		want  float64
	}{
		{name: "flat", power: makeFlatSpectrum(8, 2), sigma: 2, want: 2},
		{name: "two levels", power: []float64{0, 2, 0, 2}, sigma: 2, want: 3},
		{name: "sigma zero is mean", power: []float64{1, 2, 3, 6}, sigma: 0, want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Threshold(tt.power, tt.sigma); !almostEqual(got, tt.want, tolerance) {
				t.Fatalf("Threshold = %v, want %v", got, tt.want)
			}
		})
	}

	if !math.IsNaN(Threshold(nil, 2)) {
		t.Fatal("Threshold of empty spectrum must be NaN")
	}
}

func TestFlatness(t *testing.T) {
	if got := Flatness(makeFlatSpectrum(16, 3)); !almostEqual(got, 1, tolerance) {
		t.Fatalf("flat spectrum flatness = %v, want 1", got)
	}

	peaky := make([]float64, 16)
	for i := range peaky {
		peaky[i] = 1e-6
	}
	peaky[4] = 100
	if got := Flatness(peaky); got > 0.01 {
		t.Fatalf("peaky spectrum flatness = %v, want near 0", got)
	}

	// DC is ignored.
	dcHeavy := makeFlatSpectrum(8, 1)
	dcHeavy[0] = 1000
	if got := Flatness(dcHeavy); !almostEqual(got, 1, tolerance) {
		t.Fatalf("flatness with large DC = %v, want 1", got)
	}

	withZero := []float64{1, 1, 0, 1}
	if got := Flatness(withZero); got != 0 {
		t.Fatalf("flatness with zero bin = %v, want 0", got)
	}
	if Flatness([]float64{5}) != 0 {
		t.Fatal("single bin flatness must be 0")
	}
}
