// Package spatial averages gridded fields over latitude/longitude boxes.
//
// Boxes are given in degrees. Datasets whose longitudes run over [0, 360)
// are detected from the data (largest longitude above 181) and the box is
// shifted by +360 before selection. Selection is inclusive and by
// coordinate value, so ascending and descending axes both work.
package spatial
