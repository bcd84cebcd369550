package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cwbudde/algo-climate/grid"
	"github.com/cwbudde/algo-climate/stats/climatology"
)

// ErrNotProcessed is returned by operations that need the anomaly dataset
// before Process has succeeded.
var ErrNotProcessed = errors.New("pipeline: anomalies not computed, call Process first")

// Pipeline runs the analysis over one source dataset.
type Pipeline struct {
	source *grid.Dataset
	cfg    Config

	mu        sync.RWMutex
	anomalies *grid.Dataset
	summary   climatology.Summary
}

// New creates a Pipeline over source. The source is read, never modified.
func New(source *grid.Dataset, opts ...Option) *Pipeline {
	return &Pipeline{
		source: source,
		cfg:    ApplyOptions(opts...),
	}
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Source returns the source dataset.
func (p *Pipeline) Source() *grid.Dataset { return p.source }

// Process computes the detrended anomaly dataset and replaces any earlier
// result. On error the earlier result is kept.
func (p *Pipeline) Process(ctx context.Context) error {
	start := time.Now()
	anom, summary, err := climatology.DetrendDataset(ctx, p.source, climatology.WithWorkers(p.cfg.Workers))
	if err != nil {
		return fmt.Errorf("pipeline: detrend: %w", err)
	}

	l := p.cfg.Logger
	for _, name := range summary.Skipped {
		l.Printf("skipping %s: not a (time, lat, lon) variable", name)
	}
	for _, name := range summary.MissingMetadata {
		l.Printf("%s has no %s, using an empty base name", name, grid.AttrLongName)
	}
	l.Printf("detrended %d variable(s) [%s] in %s",
		anom.Len(), strings.Join(anom.Names(), ", "), time.Since(start).Round(time.Millisecond))

	p.mu.Lock()
	p.anomalies = anom
	p.summary = summary
	p.mu.Unlock()
	return nil
}

// Anomalies returns the anomaly dataset, or nil before Process.
func (p *Pipeline) Anomalies() *grid.Dataset {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.anomalies
}

// Summary returns what the last Process skipped or patched.
func (p *Pipeline) Summary() climatology.Summary {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.summary
}

// variable returns the named anomaly series.
func (p *Pipeline) variable(name string) (*grid.Series, error) {
	anom := p.Anomalies()
	if anom == nil {
		return nil, ErrNotProcessed
	}
	return anom.Get(name)
}
