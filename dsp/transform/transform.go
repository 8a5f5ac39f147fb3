// Package transform defines the fixed-size spectral transform contract
// consumed by the spectrogram generator, together with FFT-backed
// implementations. A context owns its internal buffers for its lifetime;
// callers write input samples, call Run, and read interleaved re/im pairs
// from the output buffer. Contexts are not reentrant: only one Run may be
// in flight per instance.
package transform

// Context is an opaque transform capability of fixed power-of-two size.
type Context interface {
	// Size returns the transform length.
	Size() int
	// Real reports whether the context consumes real-valued input.
	Real() bool
	// Input returns the mutable input buffer: Size() samples for real
	// contexts, Size() interleaved re/im pairs for complex contexts.
	Input() []float64
	// Output returns the mutable output buffer holding Size()/2+1
	// interleaved re/im pairs. Run overwrites every element.
	Output() []float64
	// Run executes the transform on the current input buffer contents.
	Run() error
}

// Bins returns the number of non-redundant spectrum bins for a transform
// of the given size.
func Bins(size int) int {
	return size/2 + 1
}

func isPowerOfTwo(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
