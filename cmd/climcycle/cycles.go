package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-climate/dsp/core"
	"github.com/cwbudde/algo-climate/grid"
	"github.com/cwbudde/algo-climate/internal/gridio"
	"github.com/cwbudde/algo-climate/pipeline"
	"github.com/cwbudde/algo-climate/stats/spatial"
)

var (
	flagCycleVars []string
	flagBox       spatial.Box
	flagStart     string
	flagEnd       string
	flagVerbose   bool
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles <manifest.yaml>",
	Short: "Report significant periods of region-averaged anomalies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		window, err := parseWindow(flagStart, flagEnd)
		if err != nil {
			return err
		}
		if err := flagBox.Validate(); err != nil {
			return err
		}

		p, err := processed(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var reports []pipeline.Report
		var runErr error
		if len(flagCycleVars) == 0 {
			reports, runErr = p.CyclesAll(cmd.Context(), flagBox, window)
		} else {
			var errs []error
			for _, name := range flagCycleVars {
				r, err := p.Cycles(name, flagBox, window)
				if err != nil {
					errs = append(errs, err)
					continue
				}
				reports = append(reports, r)
			}
			runErr = errors.Join(errs...)
		}

		w := cmd.OutOrStdout()
		for _, r := range reports {
			fmt.Fprintln(w, r)
			if flagVerbose {
				fmt.Fprintf(w, "  threshold %.4g  flatness %.3f  over %s %s\n", r.Threshold, r.Flatness, r.Box, r.Window)
				for _, b := range r.Bins {
					if b.Significant {
						fmt.Fprintf(w, "  bin %d  frequency %.4g  period %.2f  amplitude %.4g  power %.4g (%.1f dB)\n",
							b.Index, b.Frequency, b.Period, b.Amplitude, b.Power, core.LinearPowerToDB(b.Power))
					}
				}
			}
		}
		return runErr
	},
}

func init() {
	f := cyclesCmd.Flags()
	f.StringSliceVar(&flagCycleVars, "var", nil, "variables to analyze (default all)")
	f.Float64Var(&flagBox.LonMin, "lon-min", 0, "western box edge, degrees east in [-180, 180]")
	f.Float64Var(&flagBox.LonMax, "lon-max", 0, "eastern box edge, degrees east in [-180, 180]")
	f.Float64Var(&flagBox.LatMin, "lat-min", 0, "southern box edge in degrees north")
	f.Float64Var(&flagBox.LatMax, "lat-max", 0, "northern box edge in degrees north")
	f.StringVar(&flagStart, "start", "", "first time step (2006-01, 2006-01-02 or RFC 3339)")
	f.StringVar(&flagEnd, "end", "", "last time step, inclusive")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "print the threshold and significant bins")
	for _, name := range []string{"lon-min", "lon-max", "lat-min", "lat-max"} {
		_ = cyclesCmd.MarkFlagRequired(name)
	}
	rootCmd.AddCommand(cyclesCmd)
}

func parseWindow(start, end string) (grid.TimeWindow, error) {
	var w grid.TimeWindow
	var err error
	if start != "" {
		if w.Start, err = gridio.ParseTime(start); err != nil {
			return w, fmt.Errorf("--start: %w", err)
		}
	}
	if end != "" {
		if w.End, err = gridio.ParseTime(end); err != nil {
			return w, fmt.Errorf("--end: %w", err)
		}
	}
	if !w.Start.IsZero() && !w.End.IsZero() && w.End.Before(w.Start) {
		return w, fmt.Errorf("time window ends (%s) before it starts (%s)", end, start)
	}
	return w, nil
}
