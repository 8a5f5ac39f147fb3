// Package freqscale converts between frequency in Hz and perceptual or
// display scales (mel, bark, ERB, log, linear) and builds the display-bin
// to source-bin mappings used by the spectrogram renderer.
package freqscale

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-spectrogram/dsp/interp"
)

// Scale identifies a frequency axis scale. The zero value is Log, the
// display default.
type Scale int

const (
	ScaleLog Scale = iota
	ScaleLinear
	ScaleMel
	ScaleBark
	ScaleERB
)

const (
	defaultMinFreq = 20.0

	barkTolerance     = 0.001
	maxBarkIterations = 10
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case ScaleLinear:
		return "linear"
	case ScaleMel:
		return "mel"
	case ScaleBark:
		return "bark"
	case ScaleERB:
		return "erb"
	default:
		return "log"
	}
}

// FromName maps a case-insensitive scale name to its Scale.
// Unrecognized names fall back to the log scale.
func FromName(name string) Scale {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear", "lin":
		return ScaleLinear
	case "mel":
		return ScaleMel
	case "bark":
		return ScaleBark
	case "erb":
		return ScaleERB
	default:
		return ScaleLog
	}
}

// HzToMel converts frequency in Hz to mel.
func HzToMel(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

// MelToHz converts mel to frequency in Hz.
func MelToHz(mel float64) float64 {
	return 700 * (math.Pow(10, mel/2595) - 1)
}

// HzToBark converts frequency in Hz to bark.
func HzToBark(hz float64) float64 {
	v := hz / 7500
	return 13*math.Atan(0.00076*hz) + 3.5*math.Atan(v*v)
}

// BarkToHz converts bark to frequency in Hz. The bark curve has no closed
// form inverse, so the value is found by Newton-Raphson iteration with an
// analytic derivative. The result is floored at 1 Hz.
func BarkToHz(bark float64) float64 {
	hz := bark * 100

	for range maxBarkIterations {
		err := HzToBark(hz) - bark
		if math.Abs(err) < barkTolerance {
			break
		}

		hz -= err / barkSlope(hz)
	}

	if hz < 1 {
		hz = 1
	}
	return hz
}

// barkSlope is the analytic derivative of HzToBark.
func barkSlope(hz float64) float64 {
	u := 0.00076 * hz
	v := hz / 7500
	return 13*0.00076/(1+u*u) + 3.5*(2*v/7500)/(1+v*v*v*v)
}

// HzToERB converts frequency in Hz to the ERB rate scale.
func HzToERB(hz float64) float64 {
	return 21.4 * math.Log10(1+0.00437*hz)
}

// ERBToHz converts an ERB rate to frequency in Hz.
func ERBToHz(erb float64) float64 {
	return (math.Pow(10, erb/21.4) - 1) / 0.00437
}

// ToScale converts frequency in Hz into the target scale domain.
func ToScale(s Scale, hz float64) float64 {
	switch s {
	case ScaleMel:
		return HzToMel(hz)
	case ScaleBark:
		return HzToBark(hz)
	case ScaleERB:
		return HzToERB(hz)
	case ScaleLog:
		return math.Log10(hz)
	default:
		return hz
	}
}

// FromScale converts a value in the scale domain back to frequency in Hz.
func FromScale(s Scale, v float64) float64 {
	switch s {
	case ScaleMel:
		return MelToHz(v)
	case ScaleBark:
		return BarkToHz(v)
	case ScaleERB:
		return ERBToHz(v)
	case ScaleLog:
		return math.Pow(10, v)
	default:
		return v
	}
}

// Map returns, for each display bin, the fractional source-bin position it
// samples. Positions are monotonically nondecreasing in display-bin index
// and spaced evenly in the scale domain between minFreq and maxFreq.
// minFreq defaults to 20 Hz when unset and is floored at 1 Hz; maxFreq
// defaults to nyquist. numBins is the source spectrum bin count.
func Map(numBins int, sampleRate float64, s Scale, displayBins int, minFreq, maxFreq float64) ([]float64, error) {
	if numBins < 2 {
		return nil, fmt.Errorf("freqscale: source bin count must be >= 2: %d", numBins)
	}
	if displayBins < 1 {
		return nil, fmt.Errorf("freqscale: display bin count must be >= 1: %d", displayBins)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("freqscale: sample rate must be > 0: %f", sampleRate)
	}

	nyquist := sampleRate / 2
	if minFreq <= 0 {
		minFreq = defaultMinFreq
	}
	if minFreq < 1 {
		minFreq = 1
	}
	if maxFreq <= 0 || maxFreq > nyquist {
		maxFreq = nyquist
	}
	if maxFreq <= minFreq {
		return nil, fmt.Errorf("freqscale: max frequency %f must exceed min %f", maxFreq, minFreq)
	}

	lo := ToScale(s, minFreq)
	hi := ToScale(s, maxFreq)
	binScale := float64(numBins-1) / nyquist

	out := make([]float64, displayBins)
	for d := range out {
		t := 0.0
		if displayBins > 1 {
			t = float64(d) / float64(displayBins-1)
		}

		hz := FromScale(s, lo+t*(hi-lo))
		out[d] = hz * binScale
	}
	return out, nil
}

// Remap fills dst by sampling src at each mapped fractional position with
// linear interpolation. It is the low-cost alternative to the renderer's
// downsampling path and performs no range combining.
func Remap(dst, src, mapping []float64) error {
	if len(dst) != len(mapping) {
		return fmt.Errorf("freqscale: dst length %d must match mapping length %d", len(dst), len(mapping))
	}
	if len(src) == 0 {
		return fmt.Errorf("freqscale: source spectrum must not be empty")
	}

	for d, pos := range mapping {
		dst[d] = interp.At(src, pos, interp.ModeLinear)
	}
	return nil
}
