package spectrogram

import (
	"strings"

	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

const (
	defaultSampleRate = 44100.0
	defaultRangeDB    = 80.0
)

// Algorithm selects how frames are turned into matrix cells.
type Algorithm int

const (
	// AlgorithmStandard computes one windowed transform per frame.
	AlgorithmStandard Algorithm = iota
	// AlgorithmReassignment computes three windowed transforms per frame
	// and relocates each bin to its instantaneous time-frequency estimate.
	AlgorithmReassignment
)

// String returns the algorithm name.
func (a Algorithm) String() string {
	if a == AlgorithmReassignment {
		return "reassignment"
	}
	return "standard"
}

// AlgorithmFromName maps a case-insensitive algorithm name to its Algorithm.
// Unrecognized names fall back to standard.
func AlgorithmFromName(name string) Algorithm {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reassignment", "reassigned", "reassign":
		return AlgorithmReassignment
	default:
		return AlgorithmStandard
	}
}

// Config holds spectrogram generation parameters. The transform size is
// taken from the transform context passed to New, not configured here.
type Config struct {
	// SampleRate is the sample rate of the input audio in Hz.
	SampleRate float64
	// HopSize is the frame advance in samples. Defaults to fftSize/4.
	HopSize int
	// Window selects the analysis window type. The zero value is Hann.
	Window window.Type
	// ZeroPadding divides the transform size to get the window size, so a
	// factor of 2 analyzes fftSize/2 samples padded with zeros. Defaults
	// to 1 (no padding).
	ZeroPadding int
	// Gain shifts the displayed dB range upward. Defaults to 0.
	Gain float64
	// Range is the displayed dynamic range in dB. Defaults to 80, mapping
	// Gain-80 dB..Gain dB onto 0..1.
	Range float64
	// Algorithm selects standard or reassignment processing.
	Algorithm Algorithm
	// TargetWidth caps the frame count by raising the hop size when > 0.
	// It never lowers a configured hop size.
	TargetWidth int
}

// Option configures spectrogram generation.
type Option func(*Config)

// WithSampleRate sets the input sample rate in Hz.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithHopSize sets the frame advance in samples.
func WithHopSize(hop int) Option {
	return func(cfg *Config) {
		cfg.HopSize = hop
	}
}

// WithWindow sets the analysis window type.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

// WithZeroPadding sets the zero-padding factor.
func WithZeroPadding(factor int) Option {
	return func(cfg *Config) {
		cfg.ZeroPadding = factor
	}
}

// WithGain sets the display gain in dB.
func WithGain(gain float64) Option {
	return func(cfg *Config) {
		cfg.Gain = gain
	}
}

// WithRange sets the displayed dynamic range in dB.
func WithRange(rangeDB float64) Option {
	return func(cfg *Config) {
		cfg.Range = rangeDB
	}
}

// WithAlgorithm selects the generation algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(cfg *Config) {
		cfg.Algorithm = a
	}
}

// WithTargetWidth caps the output frame count.
func WithTargetWidth(width int) Option {
	return func(cfg *Config) {
		cfg.TargetWidth = width
	}
}

func normalizeConfig(cfg Config, fftSize int) Config {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = defaultSampleRate
	}

	if cfg.ZeroPadding < 1 {
		cfg.ZeroPadding = 1
	}

	if cfg.HopSize <= 0 {
		cfg.HopSize = fftSize / 4
	}

	if cfg.Range <= 0 {
		cfg.Range = defaultRangeDB
	}

	switch cfg.Algorithm {
	case AlgorithmStandard, AlgorithmReassignment:
	default:
		cfg.Algorithm = AlgorithmStandard
	}

	if cfg.TargetWidth < 0 {
		cfg.TargetWidth = 0
	}

	return cfg
}
