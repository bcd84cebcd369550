// Package core provides small numeric and masked-buffer helpers shared by
// the detrending, filtering and spectral packages.
//
// Masks follow the grid convention: valid[i] == false marks values[i] as
// missing, and the numeric value at a missing position is never meaningful.
package core
