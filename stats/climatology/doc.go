// Package climatology removes the monthly climatology and the linear trend
// from gridded (time, lat, lon) fields.
//
// The climatology is the mean of every calendar month at every grid cell,
// accumulated in one pass as per-month sums and counts. Anomalies subtract
// the climatology of each sample's month; the anomalies of each cell are
// then detrended with a least-squares line over the sample index.
//
// Missing values propagate: a cell/month without samples has no
// climatology, an anomaly is missing when its value or climatology is, and
// detrending restores the anomaly mask after fitting.
//
// # Usage
//
//	d := climatology.NewDetrender(climatology.WithWorkers(4))
//	res, err := d.Process(ctx, sst)
//	// res.Series is (time, lat, lon) with long_name "Detrended anomaly of ..."
//
//	anom, summary, err := climatology.DetrendDataset(ctx, ds)
package climatology
