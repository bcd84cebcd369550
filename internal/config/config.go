// Package config loads climcycle settings from defaults, a YAML file and
// CLIMCYCLE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-climate/measure/periodicity"
	"github.com/cwbudde/algo-climate/pipeline"
)

// EnvPrefix prefixes environment overrides, e.g. CLIMCYCLE_WINDOW_SIZE.
const EnvPrefix = "CLIMCYCLE"

// Global configuration structure.
type Global struct {
	WindowSize        int     `mapstructure:"window_size" yaml:"window_size"`
	Sigma             float64 `mapstructure:"sigma" yaml:"sigma"`
	Cadence           float64 `mapstructure:"cadence" yaml:"cadence"`
	CadenceUnit       string  `mapstructure:"cadence_unit" yaml:"cadence_unit"`
	Workers           int     `mapstructure:"workers" yaml:"workers"`
	OneSidedThreshold bool    `mapstructure:"one_sided_threshold" yaml:"one_sided_threshold"`

	// Band rendering
	VMin       float64 `mapstructure:"vmin" yaml:"vmin"`
	VMax       float64 `mapstructure:"vmax" yaml:"vmax"`
	Background string  `mapstructure:"background" yaml:"background"`

	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// DefaultPath returns ~/.climcycle/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".climcycle", "config.yaml"), nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. An empty cfgFile reads
// DefaultPath; a missing file is not an error.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("window_size", 15)
	v.SetDefault("sigma", periodicity.DefaultSigma)
	v.SetDefault("cadence", periodicity.DefaultCadence)
	v.SetDefault("cadence_unit", pipeline.DefaultPeriodUnit)
	v.SetDefault("workers", 0)
	v.SetDefault("one_sided_threshold", false)
	v.SetDefault("vmin", 0.0)
	v.SetDefault("vmax", 2.0)
	v.SetDefault("background", pipeline.BackgroundWhite)
	v.SetDefault("output_dir", "")

	if cfgFile == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		cfgFile = path
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to DefaultPath, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// PeriodicityOptions translates the analysis settings.
func (c *Global) PeriodicityOptions() []periodicity.Option {
	opts := []periodicity.Option{
		periodicity.WithCadence(c.Cadence),
		periodicity.WithSigma(c.Sigma),
	}
	if c.OneSidedThreshold {
		opts = append(opts, periodicity.WithOneSidedThreshold())
	}
	return opts
}

// PipelineOptions translates the settings into pipeline options.
func (c *Global) PipelineOptions() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithWorkers(c.Workers),
		pipeline.WithWindowSize(c.WindowSize),
		pipeline.WithPeriodUnit(c.CadenceUnit),
		pipeline.WithPeriodicityOptions(c.PeriodicityOptions()...),
	}
}

// RenderConfig returns the band rendering settings.
func (c *Global) RenderConfig() pipeline.RenderConfig {
	return pipeline.RenderConfig{
		VMin:       c.VMin,
		VMax:       c.VMax,
		WindowSize: c.WindowSize,
		Background: c.Background,
	}
}
