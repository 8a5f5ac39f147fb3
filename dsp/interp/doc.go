// Package interp provides fractional-position sample interpolation used by
// the spectrogram renderer's frequency remapping.
//
// Available modes, from cheapest to highest quality:
//
//   - [ModeNearest]: round to the closest sample
//   - [ModeLinear]:  2-point linear interpolation
//   - [ModeCubic]:   4-point Catmull-Rom spline
//
// The [Mode] enum selects the algorithm at call sites such as [At]; the
// kernel functions [Linear2] and [Hermite4] are exported for callers that
// manage their own neighborhoods.
package interp
