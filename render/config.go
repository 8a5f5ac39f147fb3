package render

import (
	"strings"

	"github.com/cwbudde/algo-spectrogram/dsp/freqscale"
	"github.com/cwbudde/algo-spectrogram/dsp/interp"
	"github.com/cwbudde/algo-spectrogram/render/colormap"
	"github.com/cwbudde/algo-spectrogram/spectrogram"
)

const (
	defaultMinFreq = 50.0
	defaultMaxFreq = 8000.0

	// boostDivisor converts the dB frequency-gain boost into the
	// normalized [0, 1] value domain.
	boostDivisor = 40.0
)

// Downsample selects how a display bin combines the source bins it
// covers. The zero value is Max.
type Downsample int

const (
	// DownsampleMax keeps the largest value in the covered range.
	DownsampleMax Downsample = iota
	// DownsampleAverage takes the arithmetic mean over the covered range.
	DownsampleAverage
	// DownsampleNearest ignores the range and point-samples the mapped
	// position.
	DownsampleNearest
)

func (d Downsample) String() string {
	switch d {
	case DownsampleAverage:
		return "average"
	case DownsampleNearest:
		return "nearest"
	default:
		return "max"
	}
}

// DownsampleFromName maps a mode name to its Downsample. Unknown names
// fall back to Max.
func DownsampleFromName(name string) Downsample {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average", "avg", "mean":
		return DownsampleAverage
	case "nearest":
		return DownsampleNearest
	default:
		return DownsampleMax
	}
}

// Config controls rasterization. The zero value renders with the display
// defaults: matrix-sized output, log frequency axis from 50 to 8000 Hz,
// magma colors, max downsampling, and linear interpolation.
type Config struct {
	// Width and Height are the output dimensions in pixels. Values <= 0
	// default to the matrix frame and bin counts.
	Width  int
	Height int

	// Scheme selects the color scale.
	Scheme colormap.Scheme

	// Palette overrides the color lookup table. When nil, the
	// process-wide cached table for Scheme is used.
	Palette *colormap.Table

	// Scale selects the frequency axis scale.
	Scale freqscale.Scale

	// MinFreq and MaxFreq bound the displayed band in Hz. Values <= 0
	// take the defaults; both are clamped to [1, nyquist].
	MinFreq float64
	MaxFreq float64

	// FrequencyGain brightens bins above 1 kHz by
	// FrequencyGain*log10(hz/1000) dB. Zero disables the boost.
	FrequencyGain float64

	// Downsample selects the bin-combining mode.
	Downsample Downsample

	// Interpolation selects how fractional source positions are sampled.
	Interpolation interp.Mode
}

func normalizeConfig(cfg Config, res *spectrogram.Result) Config {
	if cfg.Width <= 0 {
		cfg.Width = res.NumFrames
	}
	if cfg.Height <= 0 {
		cfg.Height = res.NumBins
	}

	if cfg.MinFreq <= 0 {
		cfg.MinFreq = defaultMinFreq
	}
	if cfg.MaxFreq <= 0 {
		cfg.MaxFreq = defaultMaxFreq
	}

	nyquist := res.SampleRate / 2
	cfg.MinFreq = clampFreq(cfg.MinFreq, nyquist)
	cfg.MaxFreq = clampFreq(cfg.MaxFreq, nyquist)

	return cfg
}

func clampFreq(hz, nyquist float64) float64 {
	if hz < 1 {
		return 1
	}
	if hz > nyquist {
		return nyquist
	}
	return hz
}
