package core

import "math"

// Clamp limits value to the inclusive range [min, max].
// Swapped bounds are reordered.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp01 limits value to the unit interval.
func Clamp01(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

// RoundHalfUp rounds value to the nearest integer with .5 ties rounding
// toward positive infinity, so RoundHalfUp(-0.5) == 0 while
// RoundHalfUp(-0.51) == -1.
func RoundHalfUp(value float64) int {
	return int(math.Floor(value + 0.5))
}

// NearlyEqual returns true if a and b differ by at most tol.
func NearlyEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// DBToLinear converts a level in dB to linear amplitude.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB.
// Returns -Inf for 0 and NaN for negative amplitudes.
func LinearToDB(amplitude float64) float64 {
	return 20 * math.Log10(amplitude)
}
