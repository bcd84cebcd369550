package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-climate/internal/gridio"
)

var flagOut string

var detrendCmd = &cobra.Command{
	Use:   "detrend <manifest.yaml>",
	Short: "Write the detrended anomalies of every gridded variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := processed(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out := flagOut
		if out == "" {
			out = cfg.OutputDir
		}
		if out == "" {
			return fmt.Errorf("no output directory: use --out or set output_dir")
		}

		path, err := gridio.Save(out, p.Anomalies())
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		sum := p.Summary()
		for _, name := range sum.Skipped {
			fmt.Fprintf(w, "skipped %s (not a time, lat, lon variable)\n", name)
		}
		fmt.Fprintf(w, "✓ Wrote %d variable(s) to %s\n", p.Anomalies().Len(), path)
		return nil
	},
}

func init() {
	detrendCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output directory (default output_dir from config)")
	rootCmd.AddCommand(detrendCmd)
}
