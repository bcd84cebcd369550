package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-climate/dsp/core"
	"github.com/cwbudde/algo-climate/grid"
	"github.com/cwbudde/algo-climate/pipeline"
)

var (
	flagBandVars   []string
	flagBandWindow int
	flagVMin       float64
	flagVMax       float64
	flagBackground string
)

var bandsCmd = &cobra.Command{
	Use:   "bands <manifest.yaml>",
	Short: "Summarize the std-dev maps of the original, low-pass and high-pass anomalies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := processed(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		render := cfg.RenderConfig()
		f := cmd.Flags()
		if f.Changed("window") {
			render.WindowSize = flagBandWindow
		}
		if f.Changed("vmin") {
			render.VMin = flagVMin
		}
		if f.Changed("vmax") {
			render.VMax = flagVMax
		}
		if f.Changed("background") {
			render.Background = flagBackground
		}

		vars := flagBandVars
		if len(vars) == 0 {
			vars = p.Anomalies().Names()
		}
		for _, name := range vars {
			b, err := p.Bands(name, render)
			if err != nil {
				return err
			}
			printBands(cmd.OutOrStdout(), name, b)
		}
		return nil
	},
}

func init() {
	bandsCmd.Flags().StringSliceVar(&flagBandVars, "var", nil, "variables to decompose (default all)")
	bandsCmd.Flags().IntVar(&flagBandWindow, "window", 0, "rolling window size in samples")
	bandsCmd.Flags().Float64Var(&flagVMin, "vmin", 0, "lower bound of the displayed std-dev range")
	bandsCmd.Flags().Float64Var(&flagVMax, "vmax", 0, "upper bound of the displayed std-dev range")
	bandsCmd.Flags().StringVar(&flagBackground, "background", "", "background color (white or black)")
	rootCmd.AddCommand(bandsCmd)
}

func printBands(w io.Writer, name string, b *pipeline.Bands) {
	r := b.Render
	fmt.Fprintf(w, "%s  window %d  range [%g, %g]  background %s\n", name, r.WindowSize, r.VMin, r.VMax, r.Background)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PANEL\tCELLS\tMIN\tMEAN\tMAX\tCLIPPED")
	for k, m := range b.StdDev {
		s := summarize(m, r.VMin, r.VMax)
		if s.cells == 0 {
			fmt.Fprintf(tw, "%s\t0\t-\t-\t-\t-\n", pipeline.PanelTitles[k])
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%d\n",
			pipeline.PanelTitles[k], s.cells, s.min, s.mean, s.max, s.clipped)
	}
	tw.Flush()
}

type mapSummary struct {
	cells          int
	clipped        int
	min, mean, max float64
}

// summarize reduces a std-dev map to the statistics of its values clipped
// into [vmin, vmax].
func summarize(m *grid.Series, vmin, vmax float64) mapSummary {
	s := mapSummary{min: math.Inf(1), max: math.Inf(-1)}
	sum := 0.0
	for k, v := range m.Values {
		if !m.Valid[k] {
			continue
		}
		c := core.Clamp(v, vmin, vmax)
		if c != v {
			s.clipped++
		}
		s.cells++
		sum += c
		s.min = math.Min(s.min, c)
		s.max = math.Max(s.max, c)
	}
	if s.cells > 0 {
		s.mean = sum / float64(s.cells)
	}
	return s
}
