package pipeline

import (
	"io"
	"log"

	"github.com/cwbudde/algo-climate/dsp/filter/rolling"
	"github.com/cwbudde/algo-climate/measure/periodicity"
)

// DefaultPeriodUnit labels periods of monthly data.
const DefaultPeriodUnit = "months"

// Config controls a Pipeline.
type Config struct {
	Logger      *log.Logger
	Workers     int
	WindowSize  int
	PeriodUnit  string
	Periodicity []periodicity.Option
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a silent pipeline with the default rolling window.
func DefaultConfig() Config {
	return Config{
		Logger:     log.New(io.Discard, "", 0),
		WindowSize: rolling.DefaultWindow,
		PeriodUnit: DefaultPeriodUnit,
	}
}

// WithLogger sets the progress logger. A nil logger keeps the pipeline
// silent.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithWorkers bounds concurrent work per stage. Values < 1 select
// runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithWindowSize sets the default rolling window used by Bands.
func WithWindowSize(w int) Option {
	return func(c *Config) {
		if w > 0 {
			c.WindowSize = w
		}
	}
}

// WithPeriodUnit sets the unit reported with detected periods.
func WithPeriodUnit(unit string) Option {
	return func(c *Config) {
		if unit != "" {
			c.PeriodUnit = unit
		}
	}
}

// WithPeriodicityOptions passes options to the periodicity analyzer.
func WithPeriodicityOptions(opts ...periodicity.Option) Option {
	return func(c *Config) {
		c.Periodicity = append(c.Periodicity, opts...)
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
	return cfg
}
