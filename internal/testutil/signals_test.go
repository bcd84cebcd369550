package testutil

import (
	"math"
	"testing"
	"time"
)

func TestMonthlyTimes(t *testing.T) {
	times := MonthlyTimes(2000, 14)
	if len(times) != 14 {
		t.Fatalf("len = %d, want 14", len(times))
	}
	if got := times[0]; !got.Equal(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("times[0] = %v", got)
	}
	if got := times[13]; got.Year() != 2001 || got.Month() != time.February {
		t.Fatalf("times[13] = %v, want 2001-02", got)
	}
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(12, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[3]-1) > 1e-12 {
		t.Fatalf("s[3] = %v, want 1 (quarter period)", s[3])
	}
	for i := 12; i < len(s); i++ {
		if math.Abs(s[i]-s[i-12]) > 1e-12 {
			t.Fatalf("s[%d] = %v, want %v (periodic)", i, s[i], s[i-12])
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
	RequireFinite(t, a)
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestMonthlyPattern(t *testing.T) {
	var pattern [12]float64
	for m := range pattern {
		pattern[m] = float64(m)
	}
	s := MonthlyPattern(pattern, 30)
	if s[0] != 0 || s[11] != 11 || s[12] != 0 || s[29] != 5 {
		t.Fatalf("unexpected pattern: %v", s)
	}
}

func TestGrid(t *testing.T) {
	s := Grid("x", 3, 2, 4, 0, func(t, i, j int) float64 {
		return float64(100*t + 10*i + j)
	})
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	v, ok := s.At(2, 1, 3)
	if !ok || v != 213 {
		t.Fatalf("At(2,1,3) = %v, %v; want 213, true", v, ok)
	}
	if s.Coords.Lat[0] != -10 || s.Coords.Lon[3] != 3 {
		t.Fatalf("unexpected axes: lat=%v lon=%v", s.Coords.Lat, s.Coords.Lon)
	}
}
