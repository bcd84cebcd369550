package grid

import (
	"fmt"
	"sort"
)

// Dataset maps variable names to series and carries dataset-level
// attributes.
type Dataset struct {
	Vars  map[string]*Series
	Attrs Attrs
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{
		Vars:  make(map[string]*Series),
		Attrs: Attrs{},
	}
}

// Add stores s under its name, replacing any previous variable.
func (d *Dataset) Add(s *Series) {
	if d.Vars == nil {
		d.Vars = make(map[string]*Series)
	}
	d.Vars[s.Name] = s
}

// Get returns the named variable.
func (d *Dataset) Get(name string) (*Series, error) {
	s, ok := d.Vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
	}
	return s, nil
}

// Names returns the variable names in sorted order.
func (d *Dataset) Names() []string {
	names := make([]string, 0, len(d.Vars))
	for name := range d.Vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables.
func (d *Dataset) Len() int { return len(d.Vars) }
