// Package render rasterizes spectrogram matrices into false-color RGBA
// images.
//
// Each output column samples one source frame; each output row covers a
// band of source bins chosen by the frequency-scale mapping, combined by
// the configured downsample mode. Low frequencies end up at the bottom of
// the image, frame index increases left to right.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/freqscale"
	"github.com/cwbudde/algo-spectrogram/dsp/interp"
	"github.com/cwbudde/algo-spectrogram/render/colormap"
	"github.com/cwbudde/algo-spectrogram/spectrogram"
)

// binPlan is the per-display-bin sampling plan, precomputed once per
// render and reused across columns.
type binPlan struct {
	pos      float64
	wholeLo  int
	wholeHi  int
	collapse bool
	boost    float64
}

// Render rasterizes res into an RGBA image per cfg.
func Render(res *spectrogram.Result, cfg Config) (*image.RGBA, error) {
	if res == nil {
		return nil, fmt.Errorf("render: %w", errNilResult)
	}
	if res.NumFrames <= 0 || res.NumBins <= 1 || len(res.Mat) < res.NumFrames*res.NumBins {
		return nil, fmt.Errorf("render: %w", ErrEmptyResult)
	}

	cfg = normalizeConfig(cfg, res)

	mapping, err := freqscale.Map(res.NumBins, res.SampleRate, cfg.Scale, cfg.Height, cfg.MinFreq, cfg.MaxFreq)
	if err != nil {
		return nil, fmt.Errorf("render: frequency mapping failed: %w", err)
	}

	plans := buildPlans(mapping, res, cfg)

	palette := cfg.Palette
	if palette == nil {
		palette = colormap.Lookup(cfg.Scheme)
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))

	for x := range cfg.Width {
		frame := sourceFrame(x, cfg.Width, res.NumFrames)
		row := res.Mat[frame*res.NumBins : (frame+1)*res.NumBins]

		for d := range plans {
			v := sampleBin(row, &plans[d], cfg)
			r, g, b := palette.At(core.Clamp01(v + plans[d].boost))

			off := img.PixOffset(x, cfg.Height-1-d)
			img.Pix[off] = r
			img.Pix[off+1] = g
			img.Pix[off+2] = b
			img.Pix[off+3] = 0xFF
		}
	}

	return img, nil
}

// buildPlans derives each display bin's source position, covered
// whole-bin range (midpoint rule against the neighboring mapped
// positions, clamped at the edges), and frequency-gain boost.
func buildPlans(mapping []float64, res *spectrogram.Result, cfg Config) []binPlan {
	nyquist := res.SampleRate / 2
	hzPerBin := nyquist / float64(res.NumBins-1)

	plans := make([]binPlan, len(mapping))
	for d, pos := range mapping {
		prev, next := pos, pos
		if d > 0 {
			prev = mapping[d-1]
		}
		if d < len(mapping)-1 {
			next = mapping[d+1]
		}

		lo := (prev + pos) / 2
		hi := (pos + next) / 2

		plan := binPlan{
			pos:      pos,
			wholeLo:  int(math.Ceil(lo)),
			wholeHi:  int(math.Floor(hi)),
			collapse: int(lo) == int(hi),
		}
		if plan.wholeLo < 0 {
			plan.wholeLo = 0
		}
		if plan.wholeHi > res.NumBins-1 {
			plan.wholeHi = res.NumBins - 1
		}

		if hz := pos * hzPerBin; hz > 1000 && cfg.FrequencyGain != 0 {
			plan.boost = cfg.FrequencyGain * math.Log10(hz/1000) / boostDivisor
		}

		plans[d] = plan
	}

	return plans
}

// sampleBin reads one display-bin value from a source frame row. The
// interpolated sample participates in the max and average combines, so
// downsampled output never drops below the plain point sample.
func sampleBin(row []float64, plan *binPlan, cfg Config) float64 {
	v := interp.At(row, plan.pos, cfg.Interpolation)
	if v < 0 {
		// Cubic overshoot on sharp edges.
		v = 0
	}

	if cfg.Downsample == DownsampleNearest || plan.collapse {
		return v
	}

	switch cfg.Downsample {
	case DownsampleAverage:
		sum := v
		count := 1
		for b := plan.wholeLo; b <= plan.wholeHi; b++ {
			sum += row[b]
			count++
		}
		return sum / float64(count)
	default:
		for b := plan.wholeLo; b <= plan.wholeHi; b++ {
			if row[b] > v {
				v = row[b]
			}
		}
		return v
	}
}

// sourceFrame maps an output column to the source frame nearest the
// column center.
func sourceFrame(x, width, numFrames int) int {
	if width == numFrames {
		return x
	}

	frame := int((float64(x) + 0.5) * float64(numFrames) / float64(width))
	if frame > numFrames-1 {
		frame = numFrames - 1
	}
	return frame
}
