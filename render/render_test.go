package render

import (
	"testing"

	"github.com/cwbudde/algo-spectrogram/dsp/interp"
	"github.com/cwbudde/algo-spectrogram/render/colormap"
	"github.com/cwbudde/algo-spectrogram/spectrogram"
)

func testResult(frames, bins int, fill func(frame, bin int) float64) *spectrogram.Result {
	res := &spectrogram.Result{
		Mat:        make([]float64, frames*bins),
		NumFrames:  frames,
		NumBins:    bins,
		SampleRate: 44100,
	}
	for f := range frames {
		for b := range bins {
			res.Mat[f*bins+b] = fill(f, b)
		}
	}
	return res
}

func patterned(frame, bin int) float64 {
	return float64((frame*37+bin*17)%101) / 100
}

func TestRenderDefaults(t *testing.T) {
	res := testResult(4, 257, patterned)

	img, err := Render(res, Config{})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 257 {
		t.Fatalf("bounds = %v, want 4x257", img.Bounds())
	}

	for y := range 257 {
		for x := range 4 {
			if img.RGBAAt(x, y).A != 0xFF {
				t.Fatalf("alpha at (%d,%d) = %d, want 255", x, y, img.RGBAAt(x, y).A)
			}
		}
	}
}

func TestRenderOrientation(t *testing.T) {
	// Ramp brightness up with bin index: high frequencies render bright.
	res := testResult(1, 513, func(_, bin int) float64 {
		return float64(bin) / 512
	})

	img, err := Render(res, Config{Scheme: colormap.SchemeGrayscale})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	top := img.RGBAAt(0, 0).R
	bottom := img.RGBAAt(0, img.Bounds().Dy()-1).R
	if top <= bottom {
		t.Fatalf("top %d <= bottom %d, want high frequencies on top", top, bottom)
	}
}

func TestRenderMaxDominatesNearest(t *testing.T) {
	res := testResult(8, 513, patterned)

	maxImg, err := Render(res, Config{
		Height:     40,
		Scheme:     colormap.SchemeGrayscale,
		Downsample: DownsampleMax,
	})
	if err != nil {
		t.Fatalf("max Render() error = %v", err)
	}

	nearImg, err := Render(res, Config{
		Height:     40,
		Scheme:     colormap.SchemeGrayscale,
		Downsample: DownsampleNearest,
	})
	if err != nil {
		t.Fatalf("nearest Render() error = %v", err)
	}

	for y := range 40 {
		for x := range 8 {
			if maxImg.RGBAAt(x, y).R < nearImg.RGBAAt(x, y).R {
				t.Fatalf("max %d < nearest %d at (%d,%d)",
					maxImg.RGBAAt(x, y).R, nearImg.RGBAAt(x, y).R, x, y)
			}
		}
	}
}

func TestRenderColumnResampling(t *testing.T) {
	// Constant value per frame makes column colors directly comparable.
	res := testResult(10, 17, func(frame, _ int) float64 {
		return float64(frame) / 9
	})

	img, err := Render(res, Config{Width: 20, Scheme: colormap.SchemeGrayscale})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if img.Bounds().Dx() != 20 {
		t.Fatalf("width = %d, want 20", img.Bounds().Dx())
	}

	// Columns 0 and 1 both cover source frame 0, column 2 moves on.
	if img.RGBAAt(0, 0) != img.RGBAAt(1, 0) {
		t.Fatal("upscaled columns 0 and 1 differ")
	}
	if img.RGBAAt(1, 0) == img.RGBAAt(2, 0) {
		t.Fatal("column 2 should sample the next frame")
	}

	small, err := Render(res, Config{Width: 5, Scheme: colormap.SchemeGrayscale})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if small.Bounds().Dx() != 5 {
		t.Fatalf("width = %d, want 5", small.Bounds().Dx())
	}
}

func TestRenderFrequencyGain(t *testing.T) {
	res := testResult(2, 513, func(_, _ int) float64 { return 0.5 })

	flat, err := Render(res, Config{Scheme: colormap.SchemeGrayscale})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	boosted, err := Render(res, Config{
		Scheme:        colormap.SchemeGrayscale,
		FrequencyGain: 40,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	bottom := flat.Bounds().Dy() - 1

	// 50 Hz sits below the 1 kHz knee and must not change.
	if flat.RGBAAt(0, bottom).R != boosted.RGBAAt(0, bottom).R {
		t.Fatalf("bottom row changed: %d vs %d",
			flat.RGBAAt(0, bottom).R, boosted.RGBAAt(0, bottom).R)
	}

	// 8 kHz gets 40*log10(8) dB, saturating the display value.
	if flat.RGBAAt(0, 0).R >= boosted.RGBAAt(0, 0).R {
		t.Fatalf("top row not boosted: %d vs %d",
			flat.RGBAAt(0, 0).R, boosted.RGBAAt(0, 0).R)
	}
	if boosted.RGBAAt(0, 0).R != 0xFF {
		t.Fatalf("top row = %d, want saturated 255", boosted.RGBAAt(0, 0).R)
	}
}

func TestRenderPaletteOverride(t *testing.T) {
	res := testResult(4, 257, patterned)

	overridden, err := Render(res, Config{
		Scheme:  colormap.SchemeGrayscale,
		Palette: colormap.NewTable(colormap.SchemeHot),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	direct, err := Render(res, Config{Scheme: colormap.SchemeHot})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for i, p := range overridden.Pix {
		if p != direct.Pix[i] {
			t.Fatalf("pixel byte %d differs: %d vs %d", i, p, direct.Pix[i])
		}
	}
}

func TestRenderValidation(t *testing.T) {
	if _, err := Render(nil, Config{}); err == nil {
		t.Fatal("expected error for nil result")
	}

	if _, err := Render(&spectrogram.Result{SampleRate: 44100}, Config{}); err == nil {
		t.Fatal("expected error for empty result")
	}

	res := testResult(4, 257, patterned)
	if _, err := Render(res, Config{MinFreq: 5000, MaxFreq: 5000}); err == nil {
		t.Fatal("expected error for empty frequency band")
	}
}

func TestRenderModeCombinations(t *testing.T) {
	res := testResult(16, 257, patterned)

	for _, ds := range []Downsample{DownsampleMax, DownsampleAverage, DownsampleNearest} {
		for _, im := range []interp.Mode{interp.ModeLinear, interp.ModeNearest, interp.ModeCubic} {
			img, err := Render(res, Config{
				Width:         32,
				Height:        24,
				Downsample:    ds,
				Interpolation: im,
			})
			if err != nil {
				t.Fatalf("%v/%v: Render() error = %v", ds, im, err)
			}
			if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
				t.Fatalf("%v/%v: bounds = %v", ds, im, img.Bounds())
			}
			if img.RGBAAt(5, 5).A != 0xFF {
				t.Fatalf("%v/%v: transparent pixel", ds, im)
			}
		}
	}
}

func TestSourceFrame(t *testing.T) {
	for _, tc := range []struct {
		x, width, numFrames int
		want                int
	}{
		{0, 5, 10, 1},
		{4, 5, 10, 9},
		{0, 20, 10, 0},
		{1, 20, 10, 0},
		{2, 20, 10, 1},
		{0, 1, 7, 3},
		{6, 7, 7, 6},
	} {
		if got := sourceFrame(tc.x, tc.width, tc.numFrames); got != tc.want {
			t.Fatalf("sourceFrame(%d, %d, %d) = %d, want %d",
				tc.x, tc.width, tc.numFrames, got, tc.want)
		}
	}
}

func TestDownsampleFromName(t *testing.T) {
	for _, tc := range []struct {
		name string
		want Downsample
	}{
		{"max", DownsampleMax},
		{"average", DownsampleAverage},
		{"avg", DownsampleAverage},
		{"mean", DownsampleAverage},
		{"Nearest", DownsampleNearest},
		{"bogus", DownsampleMax},
	} {
		if got := DownsampleFromName(tc.name); got != tc.want {
			t.Fatalf("%q: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
