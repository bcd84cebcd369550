package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/cwbudde/algo-climate/internal/config"
	"github.com/cwbudde/algo-climate/internal/gridio"
	"github.com/cwbudde/algo-climate/pipeline"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	flagWorkers int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "climcycle",
	Short: "Detrended anomalies, band decomposition and cycle detection for gridded climate data",
	Long: `climcycle removes the monthly climatology and linear trend from every grid cell of a
dataset, decomposes the anomalies into rolling-mean bands and finds significant periods in
region-averaged anomaly series.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.climcycle/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log progress to stderr")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 0, "worker goroutines (overrides config, 0 = all CPUs)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: config show/set still work
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	if rootCmd.PersistentFlags().Changed("workers") && flagWorkers >= 0 {
		cfg.Workers = flagWorkers
	}
}

func logger() *log.Logger {
	if !debug {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "climcycle ", log.Lmicroseconds)
}

// processed loads the dataset behind manifest and detrends it.
func processed(ctx context.Context, manifest string) (*pipeline.Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}
	ds, err := gridio.Load(manifest)
	if err != nil {
		return nil, err
	}
	opts := append(cfg.PipelineOptions(), pipeline.WithLogger(logger()))
	p := pipeline.New(ds, opts...)
	if err := p.Process(ctx); err != nil {
		return nil, err
	}
	return p, nil
}
