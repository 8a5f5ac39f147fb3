package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed sets the random seed used by noise generation.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
}

// Seed returns the current random seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Multisine generates a sum of sine waves at the given frequencies. Each
// component carries amplitude/len(freqsHz) so the nominal peak stays at
// amplitude.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("multisine requires at least one frequency")
	}
	if samples <= 0 {
		return nil, fmt.Errorf("multisine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("multisine sample rate must be > 0: %f", g.cfg.SampleRate)
	}

	out := make([]float64, samples)
	component := amplitude / float64(len(freqsHz))
	for _, freqHz := range freqsHz {
		step := 2 * math.Pi * freqHz / g.cfg.SampleRate
		for i := range out {
			out[i] += component * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// LinearSweep generates a sine sweep whose frequency moves linearly from
// startHz to endHz over the signal duration.
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sweep samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sweep sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if startHz < 0 || endHz < 0 {
		return nil, fmt.Errorf("sweep frequencies must be >= 0: %f..%f", startHz, endHz)
	}

	out := make([]float64, samples)
	phase := 0.0
	span := endHz - startHz
	for i := range out {
		out[i] = amplitude * math.Sin(phase)
		t := 0.0
		if samples > 1 {
			t = float64(i) / float64(samples-1)
		}
		freq := startHz + span*t
		phase += 2 * math.Pi * freq / g.cfg.SampleRate
	}
	return out, nil
}

// LogSweep generates a sine sweep whose frequency moves exponentially from
// startHz to endHz over the signal duration. Both frequencies must be
// positive.
func (g *Generator) LogSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sweep samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sweep sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	if startHz <= 0 || endHz <= 0 {
		return nil, fmt.Errorf("log sweep frequencies must be > 0: %f..%f", startHz, endHz)
	}

	out := make([]float64, samples)
	phase := 0.0
	ratio := endHz / startHz
	for i := range out {
		out[i] = amplitude * math.Sin(phase)
		t := 0.0
		if samples > 1 {
			t = float64(i) / float64(samples-1)
		}
		freq := startHz * math.Pow(ratio, t)
		phase += 2 * math.Pi * freq / g.cfg.SampleRate
	}
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		av := math.Abs(v)
		if av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
