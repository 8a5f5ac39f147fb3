package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT is an algo-fft backed transform context. The real form consumes
// Size() real samples; the complex form consumes Size() re/im pairs.
type FFT struct {
	size int
	real bool

	plan *algofft.Plan[complex128]

	input  []float64
	output []float64

	scratchIn  []complex128
	scratchOut []complex128
}

// NewReal creates a real-input FFT context of the given power-of-two size.
func NewReal(size int) (*FFT, error) {
	return newFFT(size, true)
}

// NewComplex creates a complex-input FFT context of the given power-of-two
// size. The input buffer holds interleaved re/im pairs.
func NewComplex(size int) (*FFT, error) {
	return newFFT(size, false)
}

func newFFT(size int, realInput bool) (*FFT, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	inLen := size
	if !realInput {
		inLen = 2 * size
	}

	return &FFT{
		size:       size,
		real:       realInput,
		plan:       plan,
		input:      make([]float64, inLen),
		output:     make([]float64, 2*Bins(size)),
		scratchIn:  make([]complex128, size),
		scratchOut: make([]complex128, size),
	}, nil
}

// Size returns the transform length.
func (f *FFT) Size() int { return f.size }

// Real reports whether the context consumes real-valued input.
func (f *FFT) Real() bool { return f.real }

// Input returns the mutable input buffer.
func (f *FFT) Input() []float64 { return f.input }

// Output returns the mutable output buffer of interleaved re/im pairs.
func (f *FFT) Output() []float64 { return f.output }

// Run transforms the current input buffer contents into the output buffer.
func (f *FFT) Run() error {
	if f.real {
		for i := range f.size {
			f.scratchIn[i] = complex(f.input[i], 0)
		}
	} else {
		for i := range f.size {
			f.scratchIn[i] = complex(f.input[2*i], f.input[2*i+1])
		}
	}

	if err := f.plan.Forward(f.scratchOut, f.scratchIn); err != nil {
		return fmt.Errorf("transform: forward FFT failed: %w", err)
	}

	for k := range Bins(f.size) {
		f.output[2*k] = real(f.scratchOut[k])
		f.output[2*k+1] = imag(f.scratchOut[k])
	}

	return nil
}
