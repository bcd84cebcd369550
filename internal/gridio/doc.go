// Package gridio reads and writes datasets as a YAML manifest plus one CSV
// file per variable.
//
// The manifest lists the dataset attributes and, per variable, its name,
// dimension order, attributes and CSV file (relative to the manifest):
//
//	attrs:
//	  description: Contains detrended anomalies of all variables
//	variables:
//	  - name: sst
//	    dims: [time, lat, lon]
//	    attrs:
//	      long_name: Detrended anomaly of Sea surface temperature
//	    file: sst.csv
//
// Each CSV has a header with one column per dimension plus "value" and one
// row per grid point. Axis order follows the first appearance of each
// coordinate. Empty, NaN and NA values are missing; points without a row
// are missing too. Times are RFC 3339, 2006-01-02 or 2006-01.
package gridio
