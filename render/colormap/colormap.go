// Package colormap maps normalized intensities to the false-color scales
// used by the spectrogram renderer.
//
// Each scheme is an analytic piecewise-linear ramp through a handful of
// anchor colors. Rendering goes through a 256-entry lookup table sampled
// from the analytic ramp once per scheme.
package colormap

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// Scheme identifies a color scale. The zero value is Magma, the display
// default.
type Scheme int

const (
	SchemeMagma Scheme = iota
	SchemeViridis
	SchemeInferno
	SchemeHot
	SchemeGrayscale
)

func (s Scheme) String() string {
	switch s {
	case SchemeViridis:
		return "viridis"
	case SchemeInferno:
		return "inferno"
	case SchemeHot:
		return "hot"
	case SchemeGrayscale:
		return "grayscale"
	default:
		return "magma"
	}
}

// SchemeFromName maps a scale name to its Scheme. Unknown names fall back
// to Magma.
func SchemeFromName(name string) Scheme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "viridis":
		return SchemeViridis
	case "inferno":
		return SchemeInferno
	case "hot":
		return SchemeHot
	case "grayscale", "gray", "grey":
		return SchemeGrayscale
	default:
		return SchemeMagma
	}
}

// stop is one anchor of a piecewise-linear ramp.
type stop struct {
	t       float64
	r, g, b float64
}

// Magma approximates the palette audio editors commonly default to:
// black to dark blue to magenta to orange to white across equal quartiles.
var magmaStops = []stop{
	{0, 0, 0, 0},
	{0.25, 30, 12, 80},
	{0.5, 180, 44, 120},
	{0.75, 250, 150, 60},
	{1, 255, 255, 255},
}

var viridisStops = []stop{
	{0, 68, 1, 84},
	{0.25, 59, 82, 139},
	{0.5, 33, 145, 140},
	{0.75, 94, 201, 98},
	{1, 253, 231, 37},
}

var infernoStops = []stop{
	{0, 0, 0, 4},
	{0.25, 87, 16, 110},
	{0.5, 188, 55, 84},
	{0.75, 249, 142, 9},
	{1, 252, 255, 164},
}

var hotStops = []stop{
	{0, 0, 0, 0},
	{1.0 / 3, 255, 0, 0},
	{2.0 / 3, 255, 255, 0},
	{1, 255, 255, 255},
}

var grayscaleStops = []stop{
	{0, 0, 0, 0},
	{1, 255, 255, 255},
}

func schemeStops(s Scheme) []stop {
	switch s {
	case SchemeViridis:
		return viridisStops
	case SchemeInferno:
		return infernoStops
	case SchemeHot:
		return hotStops
	case SchemeGrayscale:
		return grayscaleStops
	default:
		return magmaStops
	}
}

// RGB evaluates the analytic color function of a scheme. Intensities
// outside [0, 1] clamp to the ramp ends.
func RGB(s Scheme, t float64) (r, g, b uint8) {
	t = core.Clamp01(t)
	stops := schemeStops(s)

	for i := 1; i < len(stops); i++ {
		if t > stops[i].t {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		u := (t - lo.t) / (hi.t - lo.t)
		return roundChannel(lo.r + u*(hi.r-lo.r)),
			roundChannel(lo.g + u*(hi.g-lo.g)),
			roundChannel(lo.b + u*(hi.b-lo.b))
	}

	last := stops[len(stops)-1]
	return roundChannel(last.r), roundChannel(last.g), roundChannel(last.b)
}

func roundChannel(v float64) uint8 {
	return uint8(math.Round(v))
}

// Table is a scheme sampled at 256 evenly spaced intensities.
type Table struct {
	rgb [256][3]uint8
}

// NewTable samples the analytic function of s at t = i/255.
func NewTable(s Scheme) *Table {
	tbl := &Table{}
	for i := range tbl.rgb {
		r, g, b := RGB(s, float64(i)/255)
		tbl.rgb[i] = [3]uint8{r, g, b}
	}
	return tbl
}

// At returns the table color nearest to t, rounding half up. Intensities
// outside [0, 1] clamp.
func (tbl *Table) At(t float64) (r, g, b uint8) {
	e := tbl.rgb[core.RoundHalfUp(core.Clamp01(t)*255)]
	return e[0], e[1], e[2]
}
