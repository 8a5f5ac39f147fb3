package freqscale

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestMelRoundTrip(t *testing.T) {
	for _, hz := range []float64{20, 100, 440, 1000, 4000, 15000} {
		got := MelToHz(HzToMel(hz))
		if relErr(got, hz) > 1e-12 {
			t.Fatalf("%v Hz: round trip got %v", hz, got)
		}
	}
}

func TestMelKnownValue(t *testing.T) {
	// 1 + 6300/700 = 10, so the mel value is exactly 2595*log10(10).
	if got := HzToMel(6300); !almostEqual(got, 2595, 1e-9) {
		t.Fatalf("got %v want 2595", got)
	}
}

func TestERBRoundTrip(t *testing.T) {
	for _, hz := range []float64{20, 100, 440, 1000, 4000, 15000} {
		got := ERBToHz(HzToERB(hz))
		if relErr(got, hz) > 1e-12 {
			t.Fatalf("%v Hz: round trip got %v", hz, got)
		}
	}
}

func TestERBKnownValue(t *testing.T) {
	hz := 9.0 / 0.00437
	if got := HzToERB(hz); !almostEqual(got, 21.4, 1e-9) {
		t.Fatalf("got %v want 21.4", got)
	}
}

func TestBarkRoundTrip(t *testing.T) {
	for _, hz := range []float64{50, 100, 250, 500, 1000, 2000, 4000, 8000, 15000} {
		got := BarkToHz(HzToBark(hz))
		if relErr(got, hz) > 0.001 {
			t.Fatalf("%v Hz: round trip got %v (rel err %v)", hz, got, relErr(got, hz))
		}
	}
}

func TestBarkMonotonic(t *testing.T) {
	prev := HzToBark(1)
	for hz := 10.0; hz <= 22050; hz += 10 {
		b := HzToBark(hz)
		if b <= prev {
			t.Fatalf("bark not increasing at %v Hz: %v <= %v", hz, b, prev)
		}
		prev = b
	}
}

func TestBarkToHzFloor(t *testing.T) {
	if got := BarkToHz(0); got != 1 {
		t.Fatalf("got %v want 1", got)
	}
}

func TestToFromScaleRoundTrip(t *testing.T) {
	for _, s := range []Scale{ScaleLinear, ScaleLog, ScaleMel, ScaleBark, ScaleERB} {
		for _, hz := range []float64{50, 440, 1000, 8000} {
			got := FromScale(s, ToScale(s, hz))
			if relErr(got, hz) > 0.001 {
				t.Fatalf("%v at %v Hz: got %v", s, hz, got)
			}
		}
	}
}

func TestMapEndpoints(t *testing.T) {
	const (
		numBins     = 513
		sampleRate  = 44100.0
		displayBins = 100
	)
	nyquist := sampleRate / 2
	binScale := float64(numBins-1) / nyquist

	for _, s := range []Scale{ScaleLinear, ScaleLog, ScaleMel, ScaleBark, ScaleERB} {
		mapping, err := Map(numBins, sampleRate, s, displayBins, 20, nyquist)
		if err != nil {
			t.Fatalf("%v: %v", s, err)
		}
		if len(mapping) != displayBins {
			t.Fatalf("%v: len %d want %d", s, len(mapping), displayBins)
		}
		if !almostEqual(mapping[0], 20*binScale, 0.01) {
			t.Fatalf("%v: first pos %v want %v", s, mapping[0], 20*binScale)
		}
		if !almostEqual(mapping[displayBins-1], float64(numBins-1), 0.01) {
			t.Fatalf("%v: last pos %v want %v", s, mapping[displayBins-1], float64(numBins-1))
		}
		for d := 1; d < displayBins; d++ {
			if mapping[d] < mapping[d-1] {
				t.Fatalf("%v: mapping decreases at %d: %v < %v", s, d, mapping[d], mapping[d-1])
			}
		}
	}
}

func TestMapDefaults(t *testing.T) {
	explicit, err := Map(257, 48000, ScaleLog, 64, 20, 24000)
	if err != nil {
		t.Fatal(err)
	}
	defaulted, err := Map(257, 48000, ScaleLog, 64, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := range explicit {
		if !almostEqual(explicit[i], defaulted[i], 1e-9) {
			t.Fatalf("bin %d: %v != %v", i, explicit[i], defaulted[i])
		}
	}
}

func TestMapMaxFreqClampsToNyquist(t *testing.T) {
	capped, err := Map(257, 48000, ScaleLinear, 16, 20, 1e9)
	if err != nil {
		t.Fatal(err)
	}
	nyq, err := Map(257, 48000, ScaleLinear, 16, 20, 24000)
	if err != nil {
		t.Fatal(err)
	}
	for i := range capped {
		if capped[i] != nyq[i] {
			t.Fatalf("bin %d: %v != %v", i, capped[i], nyq[i])
		}
	}
}

func TestMapSingleDisplayBin(t *testing.T) {
	mapping, err := Map(513, 44100, ScaleLinear, 1, 100, 10000)
	if err != nil {
		t.Fatal(err)
	}
	want := 100 * 512.0 / 22050
	if !almostEqual(mapping[0], want, 1e-9) {
		t.Fatalf("got %v want %v", mapping[0], want)
	}
}

func TestMapValidation(t *testing.T) {
	for _, tc := range []struct {
		name        string
		numBins     int
		sampleRate  float64
		displayBins int
		minFreq     float64
		maxFreq     float64
	}{
		{name: "one source bin", numBins: 1, sampleRate: 44100, displayBins: 10},
		{name: "zero display bins", numBins: 513, sampleRate: 44100, displayBins: 0},
		{name: "zero sample rate", numBins: 513, sampleRate: 0, displayBins: 10},
		{name: "inverted range", numBins: 513, sampleRate: 44100, displayBins: 10, minFreq: 5000, maxFreq: 1000},
	} {
		if _, err := Map(tc.numBins, tc.sampleRate, ScaleLog, tc.displayBins, tc.minFreq, tc.maxFreq); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestRemapIdentity(t *testing.T) {
	src := []float64{0, 1, 2, 3, 4}
	mapping := []float64{0, 1, 2, 3, 4}
	dst := make([]float64, len(mapping))
	if err := Remap(dst, src, mapping); err != nil {
		t.Fatal(err)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("bin %d: got %v want %v", i, dst[i], src[i])
		}
	}
}

func TestRemapConstant(t *testing.T) {
	src := []float64{3, 3, 3, 3}
	mapping := []float64{0.25, 1.5, 2.75}
	dst := make([]float64, len(mapping))
	if err := Remap(dst, src, mapping); err != nil {
		t.Fatal(err)
	}
	for i, v := range dst {
		if v != 3 {
			t.Fatalf("bin %d: got %v want 3", i, v)
		}
	}
}

func TestRemapValidation(t *testing.T) {
	if err := Remap(make([]float64, 2), []float64{1}, []float64{0, 0, 0}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if err := Remap(make([]float64, 1), nil, []float64{0}); err == nil {
		t.Fatal("expected empty source error")
	}
}

func TestFromName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Scale
	}{
		{name: "linear", want: ScaleLinear},
		{name: "lin", want: ScaleLinear},
		{name: "Mel", want: ScaleMel},
		{name: "BARK", want: ScaleBark},
		{name: "erb", want: ScaleERB},
		{name: "log", want: ScaleLog},
		{name: "unknown", want: ScaleLog},
		{name: "", want: ScaleLog},
	} {
		if got := FromName(tc.name); got != tc.want {
			t.Fatalf("%q: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestScaleString(t *testing.T) {
	for _, tc := range []struct {
		s    Scale
		want string
	}{
		{s: ScaleLinear, want: "linear"},
		{s: ScaleLog, want: "log"},
		{s: ScaleMel, want: "mel"},
		{s: ScaleBark, want: "bark"},
		{s: ScaleERB, want: "erb"},
		{s: Scale(42), want: "log"},
	} {
		if got := tc.s.String(); got != tc.want {
			t.Fatalf("%d: got %q want %q", int(tc.s), got, tc.want)
		}
	}
}
