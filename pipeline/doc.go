// Package pipeline orchestrates anomaly extraction, band decomposition and
// cycle detection over a gridded dataset.
//
// A Pipeline owns one source dataset. [Pipeline.Process] derives the
// anomaly dataset (monthly climatology removed, per-cell linear trend
// removed) and replaces any earlier one; the other operations read that
// dataset and never modify it.
//
// # Usage
//
//	p := pipeline.New(ds, pipeline.WithLogger(logger))
//	if err := p.Process(ctx); err != nil {
//		return err
//	}
//	bands, err := p.Bands("sst", pipeline.DefaultRenderConfig())
//	report, err := p.Cycles("sst", spatial.Box{LonMin: -170, LonMax: -120, LatMin: -5, LatMax: 5}, grid.TimeWindow{})
//	fmt.Println(report)
package pipeline
