package spectrum

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-climate/internal/testutil"
)

func TestMagnitudePower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]=%f want=5", mag[0])
	}

	pow := Power(bins)
	if math.Abs(pow[0]-25) > 1e-12 || math.Abs(pow[1]-2) > 1e-12 || pow[2] != 0 {
		t.Fatalf("Power = %v, want [25 2 0]", pow)
	}

	if Power(nil) != nil || Magnitude(nil) != nil {
		t.Fatal("empty input must give nil output")
	}
}

func TestTransformMatchesDFT(t *testing.T) {
	for _, n := range []int{1, 2, 7, 12, 64, 100, 120, 127} {
		x := testutil.DeterministicNoise(uint64(n), 1, n)
		got, err := Transform(x)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		want := DFT(x)
		for k := range want {
			if d := cmplx.Abs(got[k] - want[k]); d > 1e-9 {
				t.Fatalf("n=%d bin %d: got %v, want %v", n, k, got[k], want[k])
			}
		}
	}
}

func TestTransformSinusoid(t *testing.T) {
	n, period := 96, 12.0
	x := testutil.DeterministicSine(period, 1, n)
	X, err := Transform(x)
	if err != nil {
		t.Fatal(err)
	}
	pow := Power(X)

	// A unit sine of k cycles puts (n/2)² into bins k and n-k.
	k := int(float64(n) / period)
	want := float64(n*n) / 4
	if math.Abs(pow[k]-want) > 1e-6 || math.Abs(pow[n-k]-want) > 1e-6 {
		t.Fatalf("power at %d/%d = %v/%v, want %v", k, n-k, pow[k], pow[n-k], want)
	}
	for i, p := range pow {
		if i != k && i != n-k && p > 1e-9 {
			t.Fatalf("leakage at bin %d: %v", i, p)
		}
	}
}

func TestTransformEmpty(t *testing.T) {
	if _, err := Transform(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestFrequencies(t *testing.T) {
	tests := []struct {
		n    int
		d    float64
		want []float64
	}{
		{n: 4, d: 1, want: []float64{0, 0.25, -0.5, -0.25}},
		{n: 5, d: 1, want: []float64{0, 0.2, 0.4, -0.4, -0.2}},
		{n: 4, d: 0.5, want: []float64{0, 0.5, -1, -0.5}},
		{n: 0, d: 1, want: []float64{}},
	}
	for _, tt := range tests {
		testutil.RequireSliceNearlyEqual(t, Frequencies(tt.n, tt.d), tt.want, 1e-15)
	}
}

func TestPeriods(t *testing.T) {
	p := Periods([]float64{0, 0.25, -0.5})
	if !math.IsInf(p[0], 1) {
		t.Fatalf("period at f=0 = %v, want +Inf", p[0])
	}
	if p[1] != 4 || p[2] != -2 {
		t.Fatalf("periods = %v", p)
	}
}
