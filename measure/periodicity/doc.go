// Package periodicity detects statistically significant cycles in a
// uniformly sampled series.
//
// The series is transformed with a DFT and the power |X[k]|² of every bin
// is compared with a threshold of mean + sigma·std of the power (population
// standard deviation, sigma = 2 by default). Periods are 1/f in the units
// of the sample cadence, so monthly data with the default cadence of 1
// yields periods in months.
//
// By default the threshold statistics run over all n bins, the mirrored
// negative-frequency half included. [WithOneSidedThreshold] restricts them
// to the positive-frequency candidate bins instead.
//
// Only bins 1..n/2-1 are candidates: the zero-frequency bin has an infinite
// period and is never reported.
//
// # Usage
//
//	a := periodicity.NewAnalyzer()
//	res, err := a.Analyze(boxMean)
//	fmt.Println(res.Periods) // e.g. [48 12]
package periodicity
