// Package grid provides the data model shared by the climate analysis
// packages: a variable's values over named (time, lat, lon) axes with an
// explicit missing-value mask, one-dimensional time series extracted from
// it, and datasets mapping variable names to series.
//
// Missingness is carried by a boolean validity channel next to the numeric
// values. The numeric value at a missing position is never meaningful and
// is never read by the analysis packages.
//
// # Usage
//
//	s := grid.New("sst", times, lats, lons)
//	s.Set(0, 1, 2, 287.4)
//	v, ok := s.At(0, 1, 2)
//	cell := s.Cell(1, 2) // TimeSeries along time
package grid
