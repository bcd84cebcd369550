package grid

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"
)

// Canonical dimension names. A variable takes part in the anomaly analysis
// only when its dimensions are exactly these three.
const (
	DimTime = "time"
	DimLat  = "lat"
	DimLon  = "lon"
)

// AttrLongName is the attribute holding a human-readable variable name.
const AttrLongName = "long_name"

// Errors returned by grid operations.
var (
	ErrShapeMismatch   = errors.New("grid: values, mask and axes disagree in shape")
	ErrUnknownDim      = errors.New("grid: unknown dimension")
	ErrMissingMetadata = errors.New("grid: missing metadata attribute")
	ErrEmptySelection  = errors.New("grid: selection is empty")
	ErrUnknownVariable = errors.New("grid: unknown variable")
	ErrMissingValues   = errors.New("grid: series contains missing values")
	ErrUnorderedTime   = errors.New("grid: time axis is not strictly increasing")
)

// Attrs is a free-form attribute mapping attached to a series or dataset.
type Attrs map[string]any

// Clone returns a shallow copy of the mapping. A nil receiver yields an
// empty, non-nil mapping.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Lookup returns the attribute formatted as text.
func (a Attrs) Lookup(key string) (string, bool) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// Coords holds the coordinate axes of a series. Time, Lat and Lon back the
// canonical dimensions; Other holds any further named numeric axis.
type Coords struct {
	Time  []time.Time
	Lat   []float64
	Lon   []float64
	Other map[string][]float64
}

// Len returns the length of the named axis.
func (c Coords) Len(dim string) (int, bool) {
	switch dim {
	case DimTime:
		return len(c.Time), true
	case DimLat:
		return len(c.Lat), true
	case DimLon:
		return len(c.Lon), true
	}
	v, ok := c.Other[dim]
	return len(v), ok
}

func (c Coords) clone() Coords {
	out := Coords{
		Time: slices.Clone(c.Time),
		Lat:  slices.Clone(c.Lat),
		Lon:  slices.Clone(c.Lon),
	}
	if c.Other != nil {
		out.Other = make(map[string][]float64, len(c.Other))
		for k, v := range c.Other {
			out.Other[k] = slices.Clone(v)
		}
	}
	return out
}

func (c Coords) shape(dims []string) ([]int, error) {
	shape := make([]int, len(dims))
	for k, d := range dims {
		n, ok := c.Len(d)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no coordinate axis", ErrUnknownDim, d)
		}
		shape[k] = n
	}
	return shape, nil
}

// Series is a single variable's field over named dimensions.
//
// Values and Valid are flat, row-major in Dims order. Valid[k] == false marks
// Values[k] as missing.
type Series struct {
	Name   string
	Dims   []string
	Coords Coords
	Values []float64
	Valid  []bool
	Attrs  Attrs
}

// New creates an all-missing series with canonical (time, lat, lon)
// dimensions. The axes are copied.
func New(name string, times []time.Time, lat, lon []float64) *Series {
	n := len(times) * len(lat) * len(lon)
	return &Series{
		Name: name,
		Dims: []string{DimTime, DimLat, DimLon},
		Coords: Coords{
			Time: slices.Clone(times),
			Lat:  slices.Clone(lat),
			Lon:  slices.Clone(lon),
		},
		Values: make([]float64, n),
		Valid:  make([]bool, n),
		Attrs:  Attrs{},
	}
}

// NewWithDims creates an all-missing series over arbitrary named dimensions.
// Every dimension must have a coordinate axis in coords.
func NewWithDims(name string, dims []string, coords Coords) (*Series, error) {
	shape, err := coords.shape(dims)
	if err != nil {
		return nil, err
	}
	n := product(shape)
	return &Series{
		Name:   name,
		Dims:   slices.Clone(dims),
		Coords: coords.clone(),
		Values: make([]float64, n),
		Valid:  make([]bool, n),
		Attrs:  Attrs{},
	}, nil
}

// Shape returns the axis lengths in Dims order.
func (s *Series) Shape() ([]int, error) {
	return s.Coords.shape(s.Dims)
}

// Validate checks that values, mask and axes agree and that the time axis
// is strictly increasing.
func (s *Series) Validate() error {
	shape, err := s.Shape()
	if err != nil {
		return err
	}
	n := product(shape)
	if len(s.Values) != n || len(s.Valid) != n {
		return fmt.Errorf("%w: %s has shape %v but %d values and %d mask entries",
			ErrShapeMismatch, s.Name, shape, len(s.Values), len(s.Valid))
	}
	for k := 1; k < len(s.Coords.Time); k++ {
		if !s.Coords.Time[k].After(s.Coords.Time[k-1]) {
			return fmt.Errorf("%w: %s step %d (%s) follows %s", ErrUnorderedTime, s.Name, k,
				s.Coords.Time[k].Format(time.RFC3339), s.Coords.Time[k-1].Format(time.RFC3339))
		}
	}
	return nil
}

// HasExactDims reports whether the series' dimension set equals dims,
// ignoring order.
func (s *Series) HasExactDims(dims ...string) bool {
	if len(dims) != len(s.Dims) {
		return false
	}
	for _, d := range dims {
		if !slices.Contains(s.Dims, d) {
			return false
		}
	}
	return true
}

// IsGridded reports whether the dimensions are exactly {time, lat, lon}.
func (s *Series) IsGridded() bool {
	return s.HasExactDims(DimTime, DimLat, DimLon)
}

// IsCanonical reports whether the dimensions are (time, lat, lon) in order.
func (s *Series) IsCanonical() bool {
	return len(s.Dims) == 3 && s.Dims[0] == DimTime && s.Dims[1] == DimLat && s.Dims[2] == DimLon
}

// NumTime returns the length of the time axis.
func (s *Series) NumTime() int { return len(s.Coords.Time) }

// NumLat returns the length of the latitude axis.
func (s *Series) NumLat() int { return len(s.Coords.Lat) }

// NumLon returns the length of the longitude axis.
func (s *Series) NumLon() int { return len(s.Coords.Lon) }

// Index returns the flat offset of (t, i, j). The series must be canonical.
func (s *Series) Index(t, i, j int) int {
	return (t*len(s.Coords.Lat)+i)*len(s.Coords.Lon) + j
}

// At returns the value at (t, i, j) and whether it is present.
// The series must be canonical.
func (s *Series) At(t, i, j int) (float64, bool) {
	k := s.Index(t, i, j)
	return s.Values[k], s.Valid[k]
}

// Set stores a present value at (t, i, j). The series must be canonical.
func (s *Series) Set(t, i, j int, v float64) {
	k := s.Index(t, i, j)
	s.Values[k] = v
	s.Valid[k] = true
}

// SetMissing marks (t, i, j) as missing. The series must be canonical.
func (s *Series) SetMissing(t, i, j int) {
	k := s.Index(t, i, j)
	s.Values[k] = 0
	s.Valid[k] = false
}

// Clone returns a deep copy.
func (s *Series) Clone() *Series {
	return &Series{
		Name:   s.Name,
		Dims:   slices.Clone(s.Dims),
		Coords: s.Coords.clone(),
		Values: slices.Clone(s.Values),
		Valid:  slices.Clone(s.Valid),
		Attrs:  s.Attrs.Clone(),
	}
}

// Transpose returns a copy with axes reordered to order, which must be a
// permutation of s.Dims.
func (s *Series) Transpose(order ...string) (*Series, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(order) != len(s.Dims) {
		return nil, fmt.Errorf("%w: cannot order %v as %v", ErrUnknownDim, s.Dims, order)
	}

	shape, _ := s.Shape()
	perm := make([]int, len(order))
	used := make([]bool, len(order))
	for k, name := range order {
		idx := slices.Index(s.Dims, name)
		if idx < 0 || used[idx] {
			return nil, fmt.Errorf("%w: cannot order %v as %v", ErrUnknownDim, s.Dims, order)
		}
		used[idx] = true
		perm[k] = idx
	}

	srcStrides := strides(shape)
	dstShape := make([]int, len(order))
	for k := range order {
		dstShape[k] = shape[perm[k]]
	}

	out := &Series{
		Name:   s.Name,
		Dims:   slices.Clone(order),
		Coords: s.Coords.clone(),
		Values: make([]float64, len(s.Values)),
		Valid:  make([]bool, len(s.Valid)),
		Attrs:  s.Attrs.Clone(),
	}

	counter := make([]int, len(order))
	for d := range out.Values {
		src := 0
		for k, c := range counter {
			src += c * srcStrides[perm[k]]
		}
		out.Values[d] = s.Values[src]
		out.Valid[d] = s.Valid[src]

		for k := len(counter) - 1; k >= 0; k-- {
			counter[k]++
			if counter[k] < dstShape[k] {
				break
			}
			counter[k] = 0
		}
	}
	return out, nil
}

// Canonical returns a copy ordered (time, lat, lon). Series with any other
// dimension set fail with ErrUnknownDim.
func (s *Series) Canonical() (*Series, error) {
	if !s.IsGridded() {
		return nil, fmt.Errorf("%w: %s has dims %v, want {time, lat, lon}", ErrUnknownDim, s.Name, s.Dims)
	}
	return s.Transpose(DimTime, DimLat, DimLon)
}

// SameAxes reports whether s and o have identical dimensions and coordinates.
func (s *Series) SameAxes(o *Series) bool {
	if !slices.Equal(s.Dims, o.Dims) {
		return false
	}
	if !slices.EqualFunc(s.Coords.Time, o.Coords.Time, time.Time.Equal) {
		return false
	}
	if !slices.Equal(s.Coords.Lat, o.Coords.Lat) || !slices.Equal(s.Coords.Lon, o.Coords.Lon) {
		return false
	}
	if len(s.Coords.Other) != len(o.Coords.Other) {
		return false
	}
	for k, v := range s.Coords.Other {
		if !slices.Equal(v, o.Coords.Other[k]) {
			return false
		}
	}
	return true
}

// LongName returns the long_name attribute, or ErrMissingMetadata.
func (s *Series) LongName() (string, error) {
	name, ok := s.Attrs.Lookup(AttrLongName)
	if !ok {
		return "", fmt.Errorf("%w: %s has no %s", ErrMissingMetadata, s.Name, AttrLongName)
	}
	return name, nil
}

// Cell extracts the time series at grid cell (i, j). The series must be
// canonical.
func (s *Series) Cell(i, j int) TimeSeries {
	nt := s.NumTime()
	ts := TimeSeries{
		Name:   s.Name,
		Time:   slices.Clone(s.Coords.Time),
		Values: make([]float64, nt),
		Valid:  make([]bool, nt),
	}
	for t := range nt {
		ts.Values[t], ts.Valid[t] = s.At(t, i, j)
	}
	return ts
}

// SelectTime returns the time steps inside w (inclusive bounds). A zero
// window selects everything. The series must be canonical with a monotonic
// time axis.
func (s *Series) SelectTime(w TimeWindow) (*Series, error) {
	if w.IsZero() {
		return s.Clone(), nil
	}

	times := s.Coords.Time
	start := 0
	if !w.Start.IsZero() {
		start = sort.Search(len(times), func(k int) bool {
			return !times[k].Before(w.Start)
		})
	}
	end := len(times)
	if !w.End.IsZero() {
		end = sort.Search(len(times), func(k int) bool {
			return times[k].After(w.End)
		})
	}
	if start >= end {
		return nil, fmt.Errorf("%w: no time steps of %s in %s", ErrEmptySelection, s.Name, w)
	}

	idx := make([]int, 0, end-start)
	for t := start; t < end; t++ {
		idx = append(idx, t)
	}
	return s.selectTimes(idx), nil
}

// DropEmptyTimes returns a copy without the time steps where every cell is
// missing. The series must be canonical.
func (s *Series) DropEmptyTimes() *Series {
	cells := s.NumLat() * s.NumLon()
	idx := make([]int, 0, s.NumTime())
	for t := range s.NumTime() {
		base := t * cells
		if slices.Contains(s.Valid[base:base+cells], true) {
			idx = append(idx, t)
		}
	}
	return s.selectTimes(idx)
}

func (s *Series) selectTimes(idx []int) *Series {
	cells := s.NumLat() * s.NumLon()
	out := &Series{
		Name:   s.Name,
		Dims:   slices.Clone(s.Dims),
		Coords: s.Coords.clone(),
		Values: make([]float64, 0, len(idx)*cells),
		Valid:  make([]bool, 0, len(idx)*cells),
		Attrs:  s.Attrs.Clone(),
	}
	out.Coords.Time = make([]time.Time, len(idx))
	for k, t := range idx {
		out.Coords.Time[k] = s.Coords.Time[t]
		base := t * cells
		out.Values = append(out.Values, s.Values[base:base+cells]...)
		out.Valid = append(out.Valid, s.Valid[base:base+cells]...)
	}
	return out
}

// MonthOf returns the calendar month (1-12) of t.
func MonthOf(t time.Time) int {
	return int(t.Month())
}

func product(shape []int) int {
	n := 1
	for _, v := range shape {
		n *= v
	}
	return n
}

func strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		st[k] = acc
		acc *= shape[k]
	}
	return st
}
