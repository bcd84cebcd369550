package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// FillMissing copies values into dst, writing fill wherever valid is false.
// dst is resized with [EnsureLen] and returned.
func FillMissing(dst, values []float64, valid []bool, fill float64) []float64 {
	dst = EnsureLen(dst, len(values))
	for i, v := range values {
		if valid[i] {
			dst[i] = v
		} else {
			dst[i] = fill
		}
	}
	return dst
}

// Remask zeroes every position of values that valid marks missing and
// returns a copy of the mask, so the caller's result owns its own mask.
func Remask(values []float64, valid []bool) []bool {
	out := make([]bool, len(valid))
	for i, ok := range valid {
		out[i] = ok
		if !ok {
			values[i] = 0
		}
	}
	return out
}

// CountValid returns the number of present samples.
func CountValid(valid []bool) int {
	n := 0
	for _, ok := range valid {
		if ok {
			n++
		}
	}
	return n
}

// AllMissing reports whether no sample is present. An empty mask counts as
// all missing.
func AllMissing(valid []bool) bool {
	for _, ok := range valid {
		if ok {
			return false
		}
	}
	return true
}
