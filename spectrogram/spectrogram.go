// Package spectrogram turns mono audio into a normalized time-frequency
// matrix.
//
// A Generator windows overlapping frames, runs them through a transform
// context, and converts bin magnitudes to values in [0, 1] spanning a
// configurable dB range. The standard algorithm fills one matrix column per
// frame; the reassignment algorithm additionally estimates each bin's
// instantaneous frequency and group delay from derivative- and time-ramped
// window transforms, then relocates values to their sharpened positions.
//
// A Generator reuses the transform context's buffers across frames and is
// not safe for concurrent use. Workers processing frames in parallel must
// each own a Generator with an independent context.
package spectrogram

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/transform"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

const (
	// suppressedBins is the number of DC and near-DC bins forced to zero.
	suppressedBins = 3
	// reassignEnergyFloor is the squared-magnitude threshold below which a
	// bin is too weak for a stable reassignment estimate.
	reassignEnergyFloor = 1e-20

	minTransformSize = 8
	minWindowSize    = 4
)

// Generator computes spectrograms from mono sample slices.
type Generator struct {
	ctx transform.Context
	cfg Config

	fftSize    int
	windowSize int
	numBins    int

	coeffs  []float64
	coeffsD []float64
	coeffsT []float64

	invNorm  float64
	floorDB  float64
	invRange float64

	vals  []float64
	power []float64
	outH  []float64
	outD  []float64
	outT  []float64
}

// New creates a Generator around a real-input transform context. The
// transform size fixes the FFT size; options configure everything else.
func New(ctx transform.Context, opts ...Option) (*Generator, error) {
	if ctx == nil {
		return nil, fmt.Errorf("spectrogram: %w", errNilContext)
	}
	if !ctx.Real() {
		return nil, fmt.Errorf("spectrogram: %w", errComplexContext)
	}

	fftSize := ctx.Size()
	if fftSize < minTransformSize {
		return nil, fmt.Errorf("spectrogram: transform size must be >= %d: %d", minTransformSize, fftSize)
	}

	cfg := Config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg = normalizeConfig(cfg, fftSize)

	windowSize := fftSize / cfg.ZeroPadding
	if windowSize < minWindowSize {
		return nil, fmt.Errorf("spectrogram: zero padding %d leaves a window of %d samples, need >= %d",
			cfg.ZeroPadding, windowSize, minWindowSize)
	}

	numBins := transform.Bins(fftSize)

	g := &Generator{
		ctx:        ctx,
		cfg:        cfg,
		fftSize:    fftSize,
		windowSize: windowSize,
		numBins:    numBins,
		invNorm:    2 / (float64(fftSize) * window.CoherentGain(cfg.Window)),
		floorDB:    cfg.Gain - cfg.Range,
		invRange:   1 / cfg.Range,
		vals:       make([]float64, numBins),
	}

	var err error
	g.coeffs, err = window.Get(cfg.Window, windowSize, window.VariantStandard)
	if err != nil {
		return nil, fmt.Errorf("spectrogram: window generation failed: %w", err)
	}

	if cfg.Algorithm == AlgorithmReassignment {
		g.coeffsD, err = window.Get(cfg.Window, windowSize, window.VariantDerivative)
		if err != nil {
			return nil, fmt.Errorf("spectrogram: derivative window generation failed: %w", err)
		}
		g.coeffsT, err = window.Get(cfg.Window, windowSize, window.VariantTimeRamped)
		if err != nil {
			return nil, fmt.Errorf("spectrogram: time-ramped window generation failed: %w", err)
		}

		g.power = make([]float64, numBins)
		g.outH = make([]float64, 2*numBins)
		g.outD = make([]float64, 2*numBins)
		g.outT = make([]float64, 2*numBins)
	}

	return g, nil
}

// Config returns the normalized configuration.
func (g *Generator) Config() Config { return g.cfg }

// FFTSize returns the transform size.
func (g *Generator) FFTSize() int { return g.fftSize }

// WindowSize returns the analyzed samples per frame.
func (g *Generator) WindowSize() int { return g.windowSize }

// NumBins returns the matrix bin count, fftSize/2+1.
func (g *Generator) NumBins() int { return g.numBins }

// Generate computes the spectrogram of samples.
//
// It returns ErrInsufficientData (wrapped) when samples is shorter than one
// analysis window.
func (g *Generator) Generate(samples []float64) (*Result, error) {
	start := time.Now()

	n := len(samples)
	if n < g.windowSize {
		return nil, fmt.Errorf("spectrogram: %d samples, window %d: %w", n, g.windowSize, ErrInsufficientData)
	}

	hop := g.effectiveHop(n)
	numFrames := (n-g.windowSize)/hop + 1

	res := &Result{
		Mat:        make([]float64, numFrames*g.numBins),
		NumFrames:  numFrames,
		NumBins:    g.numBins,
		FFTSize:    g.fftSize,
		WindowSize: g.windowSize,
		HopSize:    hop,
		SampleRate: g.cfg.SampleRate,
		Duration:   time.Duration(float64(n) / g.cfg.SampleRate * float64(time.Second)),
	}

	var err error
	switch g.cfg.Algorithm {
	case AlgorithmReassignment:
		err = g.generateReassigned(samples, hop, res)
	default:
		err = g.generateStandard(samples, hop, res)
	}
	if err != nil {
		return nil, err
	}

	res.Timing.Total = time.Since(start)
	return res, nil
}

// effectiveHop raises the configured hop just enough to keep the frame
// count at or below TargetWidth. It never lowers the configured hop.
func (g *Generator) effectiveHop(numSamples int) int {
	hop := g.cfg.HopSize
	if g.cfg.TargetWidth > 0 {
		if minHop := (numSamples-g.windowSize)/g.cfg.TargetWidth + 1; minHop > hop {
			hop = minHop
		}
	}
	return hop
}

func (g *Generator) generateStandard(samples []float64, hop int, res *Result) error {
	in := g.ctx.Input()

	for frame := range res.NumFrames {
		pos := frame * hop
		vecmath.MulBlock(in[:g.windowSize], samples[pos:pos+g.windowSize], g.coeffs)
		core.Zero(in[g.windowSize:])

		if err := g.runTransform(res, frame); err != nil {
			return err
		}

		g.frameValues(g.ctx.Output())
		row := res.Mat[frame*g.numBins : (frame+1)*g.numBins]
		copy(row[suppressedBins:], g.vals[suppressedBins:])
	}

	return nil
}

func (g *Generator) generateReassigned(samples []float64, hop int, res *Result) error {
	in := g.ctx.Input()
	binsPerRad := float64(g.fftSize) / (2 * math.Pi)

	passes := [3]struct {
		coeffs []float64
		out    []float64
	}{
		{g.coeffs, g.outH},
		{g.coeffsD, g.outD},
		{g.coeffsT, g.outT},
	}

	for frame := range res.NumFrames {
		pos := frame * hop
		segment := samples[pos : pos+g.windowSize]

		for _, pass := range passes {
			vecmath.MulBlock(in[:g.windowSize], segment, pass.coeffs)
			core.Zero(in[g.windowSize:])

			if err := g.runTransform(res, frame); err != nil {
				return err
			}
			copy(pass.out, g.ctx.Output())
		}

		g.frameValues(g.outH)
		spectrum.PowerFromInterleaved(g.power, g.outH)

		for k := suppressedBins; k < g.numBins; k++ {
			den := g.power[k]
			if den < reassignEnergyFloor {
				continue
			}

			reH, imH := g.outH[2*k], g.outH[2*k+1]
			reD, imD := g.outD[2*k], g.outD[2*k+1]
			reT, imT := g.outT[2*k], g.outT[2*k+1]

			// Instantaneous frequency from Im(X_Dh/X_h), group delay
			// from Re(X_Th/X_h).
			freqCorr := -(imD*reH - reD*imH) / den * binsPerRad
			timeCorr := (reT*reH + imT*imH) / den / float64(hop)

			bin := core.RoundHalfUp(float64(k) + freqCorr)
			fr := core.RoundHalfUp(float64(frame) + timeCorr)
			if bin < suppressedBins || bin >= g.numBins || fr < 0 || fr >= res.NumFrames {
				continue
			}

			idx := fr*g.numBins + bin
			if v := g.vals[k]; v > res.Mat[idx] {
				res.Mat[idx] = v
			}
		}
	}

	return nil
}

func (g *Generator) runTransform(res *Result, frame int) error {
	tfStart := time.Now()
	if err := g.ctx.Run(); err != nil {
		return fmt.Errorf("spectrogram: transform failed at frame %d: %w", frame, err)
	}
	res.Timing.Transform += time.Since(tfStart)
	res.Timing.Transforms++
	return nil
}

// frameValues converts one frame of interleaved transform output into
// normalized display values in g.vals.
func (g *Generator) frameValues(out []float64) {
	spectrum.MagnitudeFromInterleaved(g.vals, out)
	for k := range g.vals {
		g.vals[k] *= g.invNorm
	}
	spectrum.AmplitudeToDB(g.vals, g.vals)
	for k, db := range g.vals {
		g.vals[k] = core.Clamp01((db - g.floorDB) * g.invRange)
	}
}
