package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/cwbudde/algo-climate/internal/config"
	"github.com/cwbudde/algo-climate/pipeline"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set climcycle configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(w, "No config loaded")
			return nil
		}
		fmt.Fprintf(w, "window_size: %d\n", cfg.WindowSize)
		fmt.Fprintf(w, "sigma: %g\n", cfg.Sigma)
		fmt.Fprintf(w, "cadence: %g\n", cfg.Cadence)
		fmt.Fprintf(w, "cadence_unit: %s\n", cfg.CadenceUnit)
		fmt.Fprintf(w, "workers: %d\n", cfg.Workers)
		fmt.Fprintf(w, "one_sided_threshold: %t\n", cfg.OneSidedThreshold)
		fmt.Fprintf(w, "vmin: %g\n", cfg.VMin)
		fmt.Fprintf(w, "vmax: %g\n", cfg.VMax)
		fmt.Fprintf(w, "background: %s\n", cfg.Background)
		if cfg.OutputDir != "" {
			fmt.Fprintf(w, "output_dir: %s\n", cfg.OutputDir)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := setKey(cfg, args[0], args[1]); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func setKey(c *cfgpkg.Global, key, val string) error {
	switch key {
	case "window_size":
		i, err := strconv.Atoi(val)
		if err != nil || i < 1 {
			return fmt.Errorf("invalid window_size: %v (want a positive int)", val)
		}
		c.WindowSize = i
	case "sigma":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f < 0 {
			return fmt.Errorf("invalid float for sigma: %v", val)
		}
		c.Sigma = f
	case "cadence":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid cadence: %v (want a positive number)", val)
		}
		c.Cadence = f
	case "cadence_unit":
		c.CadenceUnit = val
	case "workers":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for workers: %v", val)
		}
		c.Workers = i
	case "one_sided_threshold":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for one_sided_threshold: %w", err)
		}
		c.OneSidedThreshold = b
	case "vmin":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid float for vmin: %w", err)
		}
		c.VMin = f
	case "vmax":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid float for vmax: %w", err)
		}
		c.VMax = f
	case "background":
		switch val {
		case pipeline.BackgroundWhite, pipeline.BackgroundBlack:
			c.Background = val
		default:
			return fmt.Errorf("invalid background: %s (use %s or %s)", val, pipeline.BackgroundWhite, pipeline.BackgroundBlack)
		}
	case "output_dir":
		c.OutputDir = val
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
