package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// DBEpsilon is added to linear magnitudes before the log conversion so that
// silent bins map to a finite floor (-200 dB) instead of -Inf.
const DBEpsilon = 1e-10

// scratchBuf holds pooled scratch memory for interleaved-to-planar unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// MagnitudeFromInterleaved computes |X[k]| = sqrt(re^2 + im^2) for a spectrum
// laid out as [re0, im0, re1, im1, ...] into dst. dst must have half the
// length of interleaved.
//
// This function uses SIMD-optimized implementations when available (AVX2,
// SSE2, NEON). Scratch buffers are pooled internally, so in steady state it
// does not allocate.
func MagnitudeFromInterleaved(dst, interleaved []float64) {
	re, im, buf := getScratch(len(dst))
	deinterleave(re, im, interleaved)
	MagnitudeFromParts(dst, re, im)
	putScratch(buf)
}

// PowerFromInterleaved computes |X[k]|^2 = re^2 + im^2 for a spectrum laid
// out as [re0, im0, re1, im1, ...] into dst. dst must have half the length
// of interleaved.
//
// Scratch buffers are pooled internally, so in steady state it does not
// allocate.
func PowerFromInterleaved(dst, interleaved []float64) {
	re, im, buf := getScratch(len(dst))
	deinterleave(re, im, interleaved)
	PowerFromParts(dst, re, im)
	putScratch(buf)
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the zero-allocation fast path for callers that already have real
// and imaginary parts in separate slices. All three slices must have the
// same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// This is the zero-allocation fast path for callers that already have real
// and imaginary parts in separate slices. All three slices must have the
// same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// AmplitudeToDB converts linear magnitudes to decibels into dst using
// 20*log10(v + DBEpsilon). dst may alias src. Both slices must have the
// same length.
func AmplitudeToDB(dst, src []float64) {
	for i, v := range src {
		dst[i] = 20 * math.Log10(v+DBEpsilon)
	}
}

func deinterleave(re, im, interleaved []float64) {
	for i := range re {
		re[i] = interleaved[2*i]
		im[i] = interleaved[2*i+1]
	}
}
