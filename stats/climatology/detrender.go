package climatology

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-climate/dsp/detrend"
	"github.com/cwbudde/algo-climate/grid"
)

const (
	// LongNamePrefix is prepended to the source long_name of detrended output.
	LongNamePrefix = "Detrended anomaly of "

	// AttrDescription is the dataset attribute set by DetrendDataset.
	AttrDescription = "description"

	// DatasetDescription is the value of AttrDescription on anomaly datasets.
	DatasetDescription = "Contains detrended anomalies of all variables"
)

// ErrSkipped is returned for variables whose dimensions are not exactly
// {time, lat, lon}.
var ErrSkipped = errors.New("climatology: variable is not a (time, lat, lon) grid")

// Config controls a Detrender.
type Config struct {
	// Workers bounds the goroutines detrending latitude rows. Values < 1
	// select runtime.GOMAXPROCS(0).
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: one worker per available CPU.
func DefaultConfig() Config {
	return Config{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of rows detrended concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// ApplyOptions applies opts over DefaultConfig.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Workers < 1 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg
}

// Result is the outcome of detrending one variable.
type Result struct {
	Series *grid.Series

	// MissingMetadata is set when the source had no long_name and the
	// output name was built from an empty base.
	MissingMetadata bool
}

// Detrender removes the monthly climatology and the per-cell linear trend.
type Detrender struct {
	cfg Config
}

// NewDetrender creates a Detrender.
func NewDetrender(opts ...Option) *Detrender {
	return &Detrender{cfg: ApplyOptions(opts...)}
}

// Config returns the effective configuration.
func (d *Detrender) Config() Config { return d.cfg }

// Process returns the detrended anomaly of s in (time, lat, lon) order.
// s is never modified. Non-gridded variables fail with ErrSkipped.
func (d *Detrender) Process(ctx context.Context, s *grid.Series) (Result, error) {
	clim, err := Compute(s)
	if err != nil {
		return Result{}, err
	}
	anom, err := Anomalies(s, clim)
	if err != nil {
		return Result{}, err
	}
	if err := d.detrendCells(ctx, anom); err != nil {
		return Result{}, err
	}

	base, err := s.LongName()
	missing := errors.Is(err, grid.ErrMissingMetadata)
	anom.Attrs[grid.AttrLongName] = LongNamePrefix + base
	return Result{Series: anom, MissingMetadata: missing}, nil
}

// detrendCells detrends every cell of the canonical series s in place.
// Rows are independent and write disjoint ranges of s.
func (d *Detrender) detrendCells(ctx context.Context, s *grid.Series) error {
	nt, nlat, nlon := s.NumTime(), s.NumLat(), s.NumLon()
	stride := nlat * nlon

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Workers)
	for i := range nlat {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			values := make([]float64, nt)
			valid := make([]bool, nt)
			for j := range nlon {
				k0 := i*nlon + j
				for t := range nt {
					values[t] = s.Values[t*stride+k0]
					valid[t] = s.Valid[t*stride+k0]
				}
				out, outValid := detrend.Linear(values, valid)
				for t := range nt {
					s.Values[t*stride+k0] = out[t]
					s.Valid[t*stride+k0] = outValid[t]
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// Summary lists what DetrendDataset left out or patched.
type Summary struct {
	// Skipped names the variables without (time, lat, lon) dimensions.
	Skipped []string

	// MissingMetadata names the variables detrended without a long_name.
	MissingMetadata []string
}

// DetrendDataset detrends every gridded variable of ds into a fresh dataset.
// Variables are processed concurrently; non-gridded ones are omitted and
// reported in the summary. ds is never modified.
func DetrendDataset(ctx context.Context, ds *grid.Dataset, opts ...Option) (*grid.Dataset, Summary, error) {
	d := NewDetrender(opts...)
	out := grid.NewDataset()
	out.Attrs[AttrDescription] = DatasetDescription

	var summary Summary
	names := ds.Names()
	results := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for k, name := range names {
		s := ds.Vars[name]
		if !s.IsGridded() {
			summary.Skipped = append(summary.Skipped, name)
			continue
		}
		g.Go(func() error {
			res, err := d.Process(ctx, s)
			if err != nil {
				return err
			}
			results[k] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, Summary{}, err
	}

	for k, res := range results {
		if res.Series == nil {
			continue
		}
		out.Add(res.Series)
		if res.MissingMetadata {
			summary.MissingMetadata = append(summary.MissingMetadata, names[k])
		}
	}
	return out, summary, nil
}
