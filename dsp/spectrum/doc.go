// Package spectrum computes discrete Fourier spectra of real series and the
// frequency and period of each bin.
//
// [Transform] runs the forward DFT through an algo-fft plan; lengths the
// plan factory does not support fall back to a direct O(n²) evaluation, so
// every n >= 1 is accepted. Bin frequencies follow the usual fftfreq layout:
// k/(n·d) for the first ceil(n/2) bins and negative frequencies above.
package spectrum
