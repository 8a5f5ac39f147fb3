package spectrogram

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	defaultMinHz      = 20.0
	minSpanHz         = 500.0
	thresholdFraction = 0.05
	floorStepHz       = 10.0
	ceilStepHz        = 100.0
)

// DetectFrequencyRange estimates the frequency band that carries the
// signal's energy, for automatic display-range selection.
//
// It averages each bin across all frames, takes the noise floor as the
// median of the upper index quartile of those averages, and scans outward
// from the peak bin until the average drops below floor plus 5% of the
// peak-floor distance. The bounds are rounded outward (min down to 10 Hz,
// max up to 100 Hz), clamped to [20 Hz, nyquist], and kept at least 500 Hz
// apart. Silence yields the full default range.
func DetectFrequencyRange(res *Result) (minHz, maxHz float64) {
	nyquist := res.SampleRate / 2
	if res.NumFrames <= 0 || res.NumBins <= 1 || len(res.Mat) == 0 {
		return defaultMinHz, nyquist
	}

	numBins := res.NumBins
	means := make([]float64, numBins)
	for frame := range res.NumFrames {
		row := res.Mat[frame*numBins : (frame+1)*numBins]
		for b, v := range row {
			means[b] += v
		}
	}
	inv := 1 / float64(res.NumFrames)
	for b := range means {
		means[b] *= inv
	}

	peakBin := 0
	for b, v := range means {
		if v > means[peakBin] {
			peakBin = b
		}
	}
	peak := means[peakBin]
	if peak == 0 {
		return defaultMinHz, nyquist
	}

	// Upper index quartile approximates bins the signal rarely reaches.
	upper := append([]float64(nil), means[numBins*3/4:]...)
	sort.Float64s(upper)
	floor := stat.Quantile(0.5, stat.Empirical, upper, nil)

	threshold := floor + thresholdFraction*(peak-floor)

	minBin := 0
	for b := peakBin; b >= 0; b-- {
		if means[b] < threshold {
			minBin = b
			break
		}
	}

	maxBin := numBins - 1
	for b := peakBin; b < numBins; b++ {
		if means[b] < threshold {
			maxBin = b
			break
		}
	}

	binHz := nyquist / float64(numBins-1)
	minHz = math.Floor(float64(minBin)*binHz/floorStepHz) * floorStepHz
	maxHz = math.Ceil(float64(maxBin)*binHz/ceilStepHz) * ceilStepHz

	minHz = clampRange(minHz, nyquist)
	maxHz = clampRange(maxHz, nyquist)
	if maxHz < minHz+minSpanHz {
		maxHz = minHz + minSpanHz
		if maxHz > nyquist {
			maxHz = nyquist
			minHz = math.Max(defaultMinHz, maxHz-minSpanHz)
		}
	}

	return minHz, maxHz
}

func clampRange(hz, nyquist float64) float64 {
	if hz < defaultMinHz {
		return defaultMinHz
	}
	if hz > nyquist {
		return nyquist
	}
	return hz
}
