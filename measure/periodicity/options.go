package periodicity

// Default analysis parameters.
const (
	DefaultCadence = 1.0
	DefaultSigma   = 2.0
)

// Config controls an Analyzer.
type Config struct {
	// Cadence is the sample spacing in the unit periods are reported in.
	Cadence float64

	// Sigma is the number of standard deviations above the mean power a
	// bin must exceed.
	Sigma float64

	// OneSided computes the threshold over the candidate bins only.
	OneSided bool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns monthly cadence and a two-sigma threshold over the
// full spectrum.
func DefaultConfig() Config {
	return Config{
		Cadence: DefaultCadence,
		Sigma:   DefaultSigma,
	}
}

// WithCadence sets the sample spacing. Non-positive values are ignored.
func WithCadence(d float64) Option {
	return func(c *Config) {
		if d > 0 {
			c.Cadence = d
		}
	}
}

// WithSigma sets the threshold multiplier. Negative values are ignored.
func WithSigma(k float64) Option {
	return func(c *Config) {
		if k >= 0 {
			c.Sigma = k
		}
	}
}

// WithOneSidedThreshold computes the threshold statistics over the
// positive-frequency candidate bins instead of the full spectrum.
func WithOneSidedThreshold() Option {
	return func(c *Config) {
		c.OneSided = true
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
