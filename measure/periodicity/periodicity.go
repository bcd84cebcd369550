package periodicity

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-climate/dsp/core"
	"github.com/cwbudde/algo-climate/dsp/spectrum"
	"github.com/cwbudde/algo-climate/grid"
	"github.com/cwbudde/algo-climate/stats/frequency"
)

// ErrInvalidInput is returned for series that are too short, contain
// non-finite values or have missing samples.
var ErrInvalidInput = errors.New("periodicity: invalid input")

// Bin describes one candidate frequency bin.
type Bin struct {
	Index       int
	Frequency   float64
	Period      float64
	Power       float64
	Amplitude   float64 // |X[k]|
	Significant bool
}

// Result holds the outcome of one analysis.
type Result struct {
	// Periods lists the significant periods by ascending bin index, that is
	// by descending period. It is empty, not nil, when nothing qualifies.
	Periods []float64

	Threshold float64

	// Bins holds the candidate bins 1..n/2-1.
	Bins []Bin

	// Stats summarizes the power spectrum the threshold was derived from.
	Stats frequency.Stats
}

// Analyzer finds significant periods.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{cfg: ApplyOptions(opts...)}
}

// Config returns the effective configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Analyze is a one-shot analysis with the given options.
func Analyze(values []float64, opts ...Option) (Result, error) {
	return NewAnalyzer(opts...).Analyze(values)
}

// AnalyzeSeries analyzes a time series. Any missing sample fails with
// ErrInvalidInput; callers decide how to fill or drop gaps.
func (a *Analyzer) AnalyzeSeries(ts grid.TimeSeries) (Result, error) {
	values, err := ts.Dense()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s has %d missing of %d samples: %v",
			ErrInvalidInput, ts.Name, ts.Len()-ts.CountValid(), ts.Len(), err)
	}
	return a.Analyze(values)
}

// Analyze finds the significant periods of values.
func (a *Analyzer) Analyze(values []float64) (Result, error) {
	n := len(values)
	if n < 2 {
		return Result{}, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, n)
	}
	for i, v := range values {
		if !core.IsFinite(v) {
			return Result{}, fmt.Errorf("%w: non-finite value %v at %d", ErrInvalidInput, v, i)
		}
	}

	X, err := spectrum.Transform(values)
	if err != nil {
		return Result{}, err
	}
	power := spectrum.Power(X)
	amp := spectrum.Magnitude(X)
	freq := spectrum.Frequencies(n, a.cfg.Cadence)
	periods := spectrum.Periods(freq)

	half := n / 2
	candidates := make([]Bin, 0, max(half-1, 0))
	for k := 1; k < half; k++ {
		if p := periods[k]; p > 0 && !math.IsInf(p, 0) {
			candidates = append(candidates, Bin{
				Index:     k,
				Frequency: freq[k],
				Period:    p,
				Power:     power[k],
				Amplitude: amp[k],
			})
		}
	}

	basis := power
	if a.cfg.OneSided {
		basis = make([]float64, len(candidates))
		for i, b := range candidates {
			basis[i] = b.Power
		}
	}

	res := Result{
		Periods: []float64{},
		Bins:    candidates,
		Stats:   frequency.Calculate(basis),
	}
	if len(basis) == 0 {
		res.Threshold = math.Inf(1)
		return res, nil
	}
	res.Threshold = frequency.Threshold(basis, a.cfg.Sigma)

	for i := range res.Bins {
		if res.Bins[i].Power > res.Threshold {
			res.Bins[i].Significant = true
			res.Periods = append(res.Periods, res.Bins[i].Period)
		}
	}
	return res, nil
}
