package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestFillMissing(t *testing.T) {
	values := []float64{1, 7, 3}
	valid := []bool{true, false, true}

	out := FillMissing(nil, values, valid, 0)
	want := []float64{1, 0, 3}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
	if values[1] != 7 {
		t.Fatal("FillMissing must not modify its input")
	}
}

func TestRemask(t *testing.T) {
	values := []float64{1, 2, 3}
	valid := []bool{false, true, false}

	mask := Remask(values, valid)
	if values[0] != 0 || values[1] != 2 || values[2] != 0 {
		t.Fatalf("values = %v, want [0 2 0]", values)
	}
	mask[1] = false
	if !valid[1] {
		t.Fatal("Remask must return an independent mask")
	}
}

func TestCountValidAndAllMissing(t *testing.T) {
	if n := CountValid([]bool{true, false, true}); n != 2 {
		t.Fatalf("CountValid = %d, want 2", n)
	}
	if !AllMissing(nil) {
		t.Fatal("empty mask should count as all missing")
	}
	if !AllMissing([]bool{false, false}) {
		t.Fatal("expected all missing")
	}
	if AllMissing([]bool{false, true}) {
		t.Fatal("expected a present sample")
	}
}
