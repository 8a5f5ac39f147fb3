package interp

import (
	"strings"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// Mode selects the interpolation algorithm. The zero value is Linear, the
// resampling default.
type Mode int

const (
	ModeLinear Mode = iota
	ModeNearest
	ModeCubic
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNearest:
		return "nearest"
	case ModeCubic:
		return "cubic"
	default:
		return "linear"
	}
}

// ModeFromName maps a case-insensitive mode name to its Mode.
// Unrecognized names fall back to linear.
func ModeFromName(name string) Mode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nearest":
		return ModeNearest
	case "cubic":
		return ModeCubic
	default:
		return ModeLinear
	}
}

// Linear2 computes 2-point linear interpolation from x0 toward x1.
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point Catmull-Rom interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
// The spline can overshoot the [x0, x1] range; callers sampling
// nonnegative data clamp the result themselves.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// At samples the slice at a fractional position with the given mode.
// Positions outside [0, len-1] clamp to the edges, as do the cubic mode's
// neighbor indexes, so edge samples repeat.
func At(samples []float64, pos float64, mode Mode) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return samples[0]
	}

	pos = core.Clamp(pos, 0, float64(n-1))

	switch mode {
	case ModeNearest:
		return samples[core.RoundHalfUp(pos)]
	case ModeCubic:
		i := int(pos)
		t := pos - float64(i)
		return Hermite4(t,
			samples[clampIndex(i-1, n)],
			samples[i],
			samples[clampIndex(i+1, n)],
			samples[clampIndex(i+2, n)],
		)
	default:
		i := int(pos)
		if i >= n-1 {
			return samples[n-1]
		}
		return Linear2(pos-float64(i), samples[i], samples[i+1])
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
