package pipeline

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-climate/grid"
	"github.com/cwbudde/algo-climate/measure/periodicity"
	"github.com/cwbudde/algo-climate/stats/spatial"
)

// Report is the outcome of a cycle search over one variable.
type Report struct {
	ID        uuid.UUID
	Variable  string
	Box       spatial.Box
	Window    grid.TimeWindow
	Unit      string
	Periods   []float64
	Threshold float64
	Bins      []periodicity.Bin

	// Flatness is the spectral flatness of the region-mean power spectrum;
	// near 1 for noise, near 0 when a few cycles dominate.
	Flatness float64
}

// String formats the report as
// "Significant Periods (months) sst : [48.00 12.00]".
func (r Report) String() string {
	parts := make([]string, len(r.Periods))
	for i, p := range r.Periods {
		parts[i] = fmt.Sprintf("%.2f", p)
	}
	return fmt.Sprintf("Significant Periods (%s) %s : [%s]", r.Unit, r.Variable, strings.Join(parts, " "))
}

// Cycles averages the named anomaly variable over box within window and
// reports its significant periods. A time step without valid cells in the
// box fails with periodicity.ErrInvalidInput.
func (p *Pipeline) Cycles(variable string, box spatial.Box, window grid.TimeWindow) (Report, error) {
	s, err := p.variable(variable)
	if err != nil {
		return Report{}, err
	}

	mean, err := spatial.Aggregate(s, box, window)
	if err != nil {
		return Report{}, fmt.Errorf("pipeline: %s: %w", variable, err)
	}
	res, err := periodicity.NewAnalyzer(p.cfg.Periodicity...).AnalyzeSeries(mean)
	if err != nil {
		return Report{}, fmt.Errorf("pipeline: %s: %w", variable, err)
	}

	r := Report{
		ID:        uuid.New(),
		Variable:  variable,
		Box:       box,
		Window:    window,
		Unit:      p.cfg.PeriodUnit,
		Periods:   res.Periods,
		Threshold: res.Threshold,
		Bins:      res.Bins,
		Flatness:  res.Stats.Flatness,
	}
	p.cfg.Logger.Printf("%s: %d significant period(s) over %s %s", variable, len(r.Periods), box, window)
	return r, nil
}

// CyclesAll runs Cycles for every anomaly variable concurrently. Reports
// come back in variable-name order; variables that fail are left out and
// their errors joined.
func (p *Pipeline) CyclesAll(ctx context.Context, box spatial.Box, window grid.TimeWindow) ([]Report, error) {
	anom := p.Anomalies()
	if anom == nil {
		return nil, ErrNotProcessed
	}

	names := anom.Names()
	reports := make([]Report, len(names))
	errs := make([]error, len(names))

	workers := p.cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[k], errs[k] = p.Cycles(name, box, window)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Report, 0, len(names))
	for k := range names {
		if errs[k] == nil {
			out = append(out, reports[k])
		}
	}
	return out, errors.Join(errs...)
}
