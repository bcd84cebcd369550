package grid

import (
	"fmt"
	"slices"
	"time"
)

// TimeSeries is a one-dimensional masked series along time, such as a single
// grid cell or a region aggregate.
type TimeSeries struct {
	Name   string
	Time   []time.Time
	Values []float64
	Valid  []bool
}

// NewTimeSeries wraps fully present values. times may be nil when the
// caller only needs sample positions.
func NewTimeSeries(name string, times []time.Time, values []float64) TimeSeries {
	valid := make([]bool, len(values))
	for i := range valid {
		valid[i] = true
	}
	return TimeSeries{
		Name:   name,
		Time:   slices.Clone(times),
		Values: slices.Clone(values),
		Valid:  valid,
	}
}

// Len returns the number of samples.
func (ts TimeSeries) Len() int { return len(ts.Values) }

// CountValid returns the number of present samples.
func (ts TimeSeries) CountValid() int {
	n := 0
	for _, ok := range ts.Valid {
		if ok {
			n++
		}
	}
	return n
}

// Complete reports whether no sample is missing.
func (ts TimeSeries) Complete() bool {
	return !slices.Contains(ts.Valid, false)
}

// Dense returns a copy of the values, or ErrMissingValues if any sample is
// missing.
func (ts TimeSeries) Dense() ([]float64, error) {
	if i := slices.Index(ts.Valid, false); i >= 0 {
		return nil, fmt.Errorf("%w: %s is missing sample %d", ErrMissingValues, ts.Name, i)
	}
	return slices.Clone(ts.Values), nil
}

// TimeWindow is an inclusive time range. A zero Start or End leaves that
// side unbounded.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether the window is unbounded on both sides.
func (w TimeWindow) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Contains reports whether t lies inside the window.
func (w TimeWindow) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && t.After(w.End) {
		return false
	}
	return true
}

func (w TimeWindow) String() string {
	if w.IsZero() {
		return "[all]"
	}
	format := func(t time.Time) string {
		if t.IsZero() {
			return "..."
		}
		return t.Format("2006-01-02")
	}
	return "[" + format(w.Start) + ", " + format(w.End) + "]"
}
