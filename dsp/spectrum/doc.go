// Package spectrum provides magnitude, power, and decibel conversion for
// transform outputs.
//
// The package intentionally does not implement FFT itself. It operates on
// the interleaved [re, im, ...] spectra produced by the transform package
// (or on separate real/imaginary planes) and feeds the spectrogram engine.
package spectrum
