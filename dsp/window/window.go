package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// Type identifies a window function. The zero value is Hann, so configs
// that leave the window unset get the analysis default.
type Type int

const (
	TypeHann Type = iota
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeRectangular
)

// Variant selects which coefficient set of a window type is generated.
type Variant int

const (
	// VariantStandard is the window function itself.
	VariantStandard Variant = iota
	// VariantDerivative is the analytic derivative dw/di, used for
	// instantaneous-frequency estimates in spectral reassignment.
	VariantDerivative
	// VariantTimeRamped is the window multiplied by (i - (N-1)/2), used for
	// group-delay estimates in spectral reassignment.
	VariantTimeRamped
)

// Metadata holds spectral properties of a window type.
type Metadata struct {
	Name         string
	CoherentGain float64
	ENBW         float64
}

// Cosine-sum coefficient tables, symmetric form with denominator N-1.
// Signs are embedded so w(x) = sum(c[k] * cos(2*pi*k*x)).
var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular:    {Name: "Rectangular", CoherentGain: 1.0, ENBW: 1.0},
	TypeHann:           {Name: "Hann", CoherentGain: 0.5, ENBW: 1.5},
	TypeHamming:        {Name: "Hamming", CoherentGain: 0.54, ENBW: 1.3628},
	TypeBlackman:       {Name: "Blackman", CoherentGain: 0.42, ENBW: 1.7268},
	TypeBlackmanHarris: {Name: "Blackman-Harris", CoherentGain: 0.35875, ENBW: 2.0044},
}

// String returns the display name of the window type.
func (t Type) String() string {
	return Info(t).Name
}

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantDerivative:
		return "derivative"
	case VariantTimeRamped:
		return "time-ramped"
	default:
		return "standard"
	}
}

// TypeFromName maps a case-insensitive window name to its Type.
// Unrecognized names fall back to Hann.
func TypeFromName(name string) Type {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "none":
		return TypeRectangular
	case "hamming":
		return TypeHamming
	case "blackman":
		return TypeBlackman
	case "blackmanharris", "blackman-harris":
		return TypeBlackmanHarris
	default:
		return TypeHann
	}
}

// Info returns static metadata for a window type.
// Unknown types report the Hann metadata, matching Generate's fallback.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}
	return metadataByType[TypeHann]
}

// CoherentGain returns the DC gain sum(w)/N of the window type, used to
// calibrate magnitude normalization so a full-scale sinusoid reads near 0 dB.
func CoherentGain(t Type) float64 {
	return Info(t).CoherentGain
}

// Generate returns freshly allocated window coefficients of the given length.
// Unknown types fall back to Hann. Use a [Cache] to share tables across calls.
func Generate(t Type, size int, variant Variant) ([]float64, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}
	if err := validateVariant(variant); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	switch variant {
	case VariantDerivative:
		fillDerivative(out, t)
	case VariantTimeRamped:
		fillStandard(out, t)
		applyTimeRamp(out)
	default:
		fillStandard(out, t)
	}
	return out, nil
}

// Apply multiplies buf in-place by the standard window of the given type.
func Apply(t Type, buf []float64) {
	if len(buf) == 0 {
		return
	}

	coeffs, err := Generate(t, len(buf), VariantStandard)
	if err != nil {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// ApplyCoefficients multiplies samples with coefficients into dst and
// returns the result, allocating when dst capacity is insufficient.
// Every element of the result is overwritten.
func ApplyCoefficients(dst, samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	dst = core.EnsureLen(dst, len(samples))
	vecmath.MulBlock(dst, samples, coeffs)

	return dst, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

func cosineCoeffs(t Type) []float64 {
	switch t {
	case TypeRectangular:
		return nil
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	case TypeBlackmanHarris:
		return blackmanHarrisCoeffs
	default:
		return hannCoeffs
	}
}

func fillStandard(out []float64, t Type) {
	coeffs := cosineCoeffs(t)
	if coeffs == nil {
		for i := range out {
			out[i] = 1
		}
		return
	}

	for i := range out {
		out[i] = cosineFromCoeffs(samplePosition(i, len(out)), coeffs)
	}
}

// fillDerivative writes the analytic derivative dw/di. For cosine-sum
// windows d/di sum(c[k] cos(2*pi*k*i/(N-1))) =
// -(2*pi/(N-1)) * sum(c[k]*k*sin(2*pi*k*i/(N-1))).
func fillDerivative(out []float64, t Type) {
	coeffs := cosineCoeffs(t)
	if coeffs == nil || len(out) < 2 {
		return
	}

	scale := 2 * math.Pi / float64(len(out)-1)
	for i := range out {
		phase := scale * float64(i)

		sum := 0.0
		for k, c := range coeffs {
			sum -= c * float64(k) * math.Sin(float64(k)*phase)
		}

		out[i] = scale * sum
	}
}

func applyTimeRamp(out []float64) {
	mid := float64(len(out)-1) / 2
	for i := range out {
		out[i] *= float64(i) - mid
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}
