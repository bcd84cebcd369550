// Command climcycle extracts detrended climate anomalies from a gridded
// dataset, splits them into low/high-frequency bands and reports the
// significant cycles of region averages.
//
// Usage:
//
//	climcycle [--config file] [--debug] <command> <manifest.yaml> [flags]
//
// Examples:
//
//	climcycle detrend data/manifest.yaml --out anomalies
//	climcycle bands data/manifest.yaml --var sst --window 15
//	climcycle cycles data/manifest.yaml --lon-min -170 --lon-max -120 --lat-min -5 --lat-max 5
//	climcycle config set window_size 21
package main

func main() {
	Execute()
}
