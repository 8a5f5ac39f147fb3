package spectrogram

import "time"

// Result holds a generated spectrogram matrix and its metadata.
//
// Mat is row-major with NumFrames rows of NumBins values in [0, 1]. The
// first three bins of every frame are zero. The matrix is created once per
// Generate call and not mutated afterwards.
type Result struct {
	Mat        []float64
	NumFrames  int
	NumBins    int
	FFTSize    int
	WindowSize int
	HopSize    int
	SampleRate float64
	Duration   time.Duration
	Timing     Timing
}

// At returns the matrix value for a frame and bin.
func (r *Result) At(frame, bin int) float64 {
	return r.Mat[frame*r.NumBins+bin]
}

// Timing holds generation timing diagnostics.
type Timing struct {
	// Transform is the time spent inside transform execution.
	Transform time.Duration
	// Total is the wall time of the whole generation call.
	Total time.Duration
	// Transforms is the number of transforms executed. Reassignment runs
	// three per frame.
	Transforms int
}

// TransformsPerSecond returns the transform throughput, or 0 when no
// transform time was recorded.
func (t Timing) TransformsPerSecond() float64 {
	if t.Transform <= 0 {
		return 0
	}
	return float64(t.Transforms) / t.Transform.Seconds()
}
