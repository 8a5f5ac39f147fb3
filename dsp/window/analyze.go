package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// using numerical DFT evaluation. It cross-checks the static metadata
// tables and feeds the CLI's verbose window report.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	// DC reference: |DFT(0)|^2
	dcRef := dftMagSq(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	coherentGain := sum / float64(n)
	enbw := float64(n) * sumSq / (sum * sum)

	// Scallop loss: evaluate at 0.5 bins offset.
	halfBinFreq := 0.5 / float64(n)
	halfBinMagSq := dftMagSq(coeffs, halfBinFreq)
	scallopLoss := 0.0
	if halfBinMagSq > 0 {
		scallopLoss = 10 * math.Log10(halfBinMagSq/dcRef)
	}

	return Analysis{
		CoherentGain:  coherentGain,
		ENBW:          enbw,
		Bandwidth3dB:  searchBandwidth(coeffs, dcRef, n),
		ScallopLossdB: scallopLoss,
	}
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// searchBandwidth finds the 3dB (half-power) main lobe width in bins
// using binary search on the DFT magnitude response.
func searchBandwidth(coeffs []float64, dcRef float64, n int) float64 {
	nf := float64(n)
	invRef := 1.0 / dcRef

	// The -3dB point is where |H(f)|^2/|H(0)|^2 = 0.5.
	// Use bisection on [0, Nyquist] in normalised frequency.
	lo := 0.0
	hi := 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		val := dftMagSq(coeffs, mid) * invRef
		if val > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	// Bandwidth is two-sided: from -f to +f.
	return 2 * lo * nf
}
