package transform

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// GonumReal is a real-input transform context backed by gonum's
// dsp/fourier package. It is interchangeable with NewReal and exists so
// the two backends can cross-check each other.
type GonumReal struct {
	size int

	fft *fourier.FFT

	input  []float64
	output []float64

	scratch []complex128
}

// NewGonumReal creates a gonum-backed real-input context of the given
// power-of-two size.
func NewGonumReal(size int) (*GonumReal, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	return &GonumReal{
		size:    size,
		fft:     fourier.NewFFT(size),
		input:   make([]float64, size),
		output:  make([]float64, 2*Bins(size)),
		scratch: make([]complex128, Bins(size)),
	}, nil
}

// Size returns the transform length.
func (g *GonumReal) Size() int { return g.size }

// Real reports whether the context consumes real-valued input.
func (g *GonumReal) Real() bool { return true }

// Input returns the mutable input buffer.
func (g *GonumReal) Input() []float64 { return g.input }

// Output returns the mutable output buffer of interleaved re/im pairs.
func (g *GonumReal) Output() []float64 { return g.output }

// Run transforms the current input buffer contents into the output buffer.
func (g *GonumReal) Run() error {
	g.fft.Coefficients(g.scratch, g.input)

	for k, c := range g.scratch {
		g.output[2*k] = real(c)
		g.output[2*k+1] = imag(c)
	}

	return nil
}
