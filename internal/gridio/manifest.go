package gridio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-climate/grid"
)

// ManifestName is the manifest file written by Save.
const ManifestName = "manifest.yaml"

var (
	// ErrManifest is returned for unusable manifests.
	ErrManifest = errors.New("gridio: invalid manifest")

	// ErrRecord is returned for unusable CSV records.
	ErrRecord = errors.New("gridio: invalid record")
)

// Manifest describes a stored dataset.
type Manifest struct {
	Attrs     map[string]any `yaml:"attrs,omitempty"`
	Variables []Variable     `yaml:"variables"`
}

// Variable describes one stored variable.
type Variable struct {
	Name  string         `yaml:"name"`
	Dims  []string       `yaml:"dims"`
	Attrs map[string]any `yaml:"attrs,omitempty"`
	File  string         `yaml:"file"`
}

// Load reads the dataset described by the manifest at path.
func Load(path string) (*grid.Dataset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridio: read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifest, path, err)
	}

	ds := grid.NewDataset()
	for k, v := range m.Attrs {
		ds.Attrs[k] = v
	}
	dir := filepath.Dir(path)
	for _, entry := range m.Variables {
		if entry.Name == "" || entry.File == "" || len(entry.Dims) == 0 {
			return nil, fmt.Errorf("%w: variable %q needs name, dims and file", ErrManifest, entry.Name)
		}
		file := entry.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(dir, file)
		}
		s, err := readVariableFile(file, entry)
		if err != nil {
			return nil, err
		}
		ds.Add(s)
	}
	return ds, nil
}

// Save writes ds into dir as ManifestName plus <variable>.csv files and
// returns the manifest path.
func Save(dir string, ds *grid.Dataset) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gridio: mkdir %s: %w", dir, err)
	}

	m := Manifest{Attrs: map[string]any(ds.Attrs.Clone())}
	for _, name := range ds.Names() {
		s := ds.Vars[name]
		entry := Variable{
			Name:  name,
			Dims:  s.Dims,
			Attrs: map[string]any(s.Attrs.Clone()),
			File:  name + ".csv",
		}
		if err := writeVariableFile(filepath.Join(dir, entry.File), s); err != nil {
			return "", err
		}
		m.Variables = append(m.Variables, entry)
	}

	b, err := yaml.Marshal(&m)
	if err != nil {
		return "", fmt.Errorf("gridio: marshal manifest: %w", err)
	}
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("gridio: write manifest: %w", err)
	}
	return path, nil
}
