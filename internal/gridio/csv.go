package gridio

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-climate/grid"
)

// ValueColumn is the CSV column holding the data values.
const ValueColumn = "value"

// timeFormats are tried in order when parsing time coordinates.
var timeFormats = []string{time.RFC3339, "2006-01-02", "2006-01"}

// axis collects the coordinates of one dimension in first-appearance order.
type axis struct {
	isTime bool
	times  []time.Time
	values []float64
	index  map[any]int
}

func newAxis(dim string) *axis {
	return &axis{isTime: dim == grid.DimTime, index: make(map[any]int)}
}

// add parses a coordinate and returns its position on the axis.
func (a *axis) add(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	var key any
	if a.isTime {
		t, err := ParseTime(raw)
		if err != nil {
			return 0, err
		}
		if k, ok := a.index[t.UnixNano()]; ok {
			return k, nil
		}
		key = t.UnixNano()
		a.times = append(a.times, t)
	} else {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			return 0, fmt.Errorf("coordinate %q is not a number", raw)
		}
		if k, ok := a.index[v]; ok {
			return k, nil
		}
		key = v
		a.values = append(a.values, v)
	}
	a.index[key] = len(a.index)
	return a.index[key], nil
}

// sort orders the axis and returns, for every coordinate in
// first-appearance order, its position on the ordered axis. Time always
// ascends; a numeric axis keeps its order when it is already monotonic in
// either direction and ascends otherwise.
func (a *axis) sort() []int {
	order := make([]int, len(a.index))
	for i := range order {
		order[i] = i
	}
	if a.isTime {
		sort.SliceStable(order, func(x, y int) bool {
			return a.times[order[x]].Before(a.times[order[y]])
		})
		a.times = permute(a.times, order)
	} else if !monotonic(a.values) {
		sort.SliceStable(order, func(x, y int) bool {
			return a.values[order[x]] < a.values[order[y]]
		})
		a.values = permute(a.values, order)
	}

	pos := make([]int, len(order))
	for k, old := range order {
		pos[old] = k
	}
	return pos
}

func permute[T any](v []T, order []int) []T {
	out := make([]T, len(order))
	for k, old := range order {
		out[k] = v[old]
	}
	return out
}

func monotonic(v []float64) bool {
	if slices.IsSorted(v) {
		return true
	}
	for k := 1; k < len(v); k++ {
		if v[k] > v[k-1] {
			return false
		}
	}
	return true
}

// ParseTime parses a time coordinate as RFC 3339, 2006-01-02 or 2006-01 (UTC).
func ParseTime(s string) (time.Time, error) {
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q matches none of %v", s, timeFormats)
}

func formatTime(t time.Time) string {
	t = t.UTC()
	if t.Equal(t.Truncate(24 * time.Hour)) {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// parseValue returns the value of a CSV cell and whether it is present.
func parseValue(raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "", "NA", "NaN", "nan":
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(v) {
		return 0, false, nil
	}
	return v, true, nil
}

func readVariableFile(path string, entry Variable) (*grid.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: %s: %w", entry.Name, err)
	}
	defer f.Close()
	return ReadVariable(f, entry)
}

// ReadVariable reads one variable's CSV from r.
func ReadVariable(r io.Reader, entry Variable) (*grid.Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: header: %v", ErrRecord, entry.Name, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	dimCols := make([]int, len(entry.Dims))
	for d, dim := range entry.Dims {
		c, ok := cols[dim]
		if !ok {
			return nil, fmt.Errorf("%w: %s: no column for dimension %q", ErrRecord, entry.Name, dim)
		}
		dimCols[d] = c
	}
	valueCol, ok := cols[ValueColumn]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no %q column", ErrRecord, entry.Name, ValueColumn)
	}

	axes := make([]*axis, len(entry.Dims))
	for d, dim := range entry.Dims {
		axes[d] = newAxis(dim)
	}

	type point struct {
		idx   []int
		value float64
		valid bool
	}
	var points []point
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRecord, entry.Name, err)
		}
		p := point{idx: make([]int, len(axes))}
		for d, a := range axes {
			if p.idx[d], err = a.add(record[dimCols[d]]); err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %v", ErrRecord, entry.Name, line, err)
			}
		}
		if p.value, p.valid, err = parseValue(record[valueCol]); err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrRecord, entry.Name, line, err)
		}
		points = append(points, p)
	}

	remap := make([][]int, len(axes))
	for d, a := range axes {
		remap[d] = a.sort()
	}

	coords := grid.Coords{}
	for d, dim := range entry.Dims {
		switch dim {
		case grid.DimTime:
			coords.Time = axes[d].times
		case grid.DimLat:
			coords.Lat = axes[d].values
		case grid.DimLon:
			coords.Lon = axes[d].values
		default:
			if coords.Other == nil {
				coords.Other = make(map[string][]float64)
			}
			coords.Other[dim] = axes[d].values
		}
	}
	s, err := grid.NewWithDims(entry.Name, entry.Dims, coords)
	if err != nil {
		return nil, fmt.Errorf("gridio: %s: %w", entry.Name, err)
	}
	for k, v := range entry.Attrs {
		s.Attrs[k] = v
	}

	shape, _ := s.Shape()
	for _, p := range points {
		k := 0
		for d, i := range p.idx {
			k = k*shape[d] + remap[d][i]
		}
		s.Values[k], s.Valid[k] = p.value, p.valid
	}
	return s, nil
}

func writeVariableFile(path string, s *grid.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gridio: %s: %w", s.Name, err)
	}
	w := bufio.NewWriter(f)
	if err := WriteVariable(w, s); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("gridio: %s: %w", s.Name, err)
	}
	return f.Close()
}

// WriteVariable writes one variable as CSV, one row per grid point.
func WriteVariable(w io.Writer, s *grid.Series) error {
	shape, err := s.Shape()
	if err != nil {
		return fmt.Errorf("gridio: %s: %w", s.Name, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(append(append([]string{}, s.Dims...), ValueColumn)); err != nil {
		return fmt.Errorf("gridio: %s: %w", s.Name, err)
	}

	idx := make([]int, len(shape))
	record := make([]string, len(shape)+1)
	for k := range s.Values {
		// Decompose k into row-major indices.
		rem := k
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d] = rem % shape[d]
			rem /= shape[d]
		}
		for d, dim := range s.Dims {
			record[d] = coordinate(s, dim, idx[d])
		}
		record[len(shape)] = ""
		if s.Valid[k] {
			record[len(shape)] = strconv.FormatFloat(s.Values[k], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("gridio: %s: %w", s.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("gridio: %s: %w", s.Name, err)
	}
	return nil
}

func coordinate(s *grid.Series, dim string, i int) string {
	switch dim {
	case grid.DimTime:
		return formatTime(s.Coords.Time[i])
	case grid.DimLat:
		return strconv.FormatFloat(s.Coords.Lat[i], 'g', -1, 64)
	case grid.DimLon:
		return strconv.FormatFloat(s.Coords.Lon[i], 'g', -1, 64)
	default:
		return strconv.FormatFloat(s.Coords.Other[dim][i], 'g', -1, 64)
	}
}
