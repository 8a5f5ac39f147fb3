// Command specgram renders spectrogram images from audio files.
//
// Usage:
//
//	specgram -in song.wav -out song.png
//	specgram -in song.flac -reassign -scheme viridis -out song.png
//	specgram -demo -stats -out demo.png
//
// Supported input formats are WAV, MP3, OGG Vorbis, and FLAC; only the
// first channel is analyzed.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fogleman/gg"

	"github.com/cwbudde/algo-spectrogram/audio"
	"github.com/cwbudde/algo-spectrogram/dsp/core"
	"github.com/cwbudde/algo-spectrogram/dsp/freqscale"
	"github.com/cwbudde/algo-spectrogram/dsp/interp"
	"github.com/cwbudde/algo-spectrogram/dsp/signal"
	"github.com/cwbudde/algo-spectrogram/dsp/transform"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
	"github.com/cwbudde/algo-spectrogram/render"
	"github.com/cwbudde/algo-spectrogram/render/colormap"
	"github.com/cwbudde/algo-spectrogram/spectrogram"
)

const demoSampleRate = 44100.0

func main() {
	var (
		in  = flag.String("in", "", "input audio file (wav, mp3, ogg, flac)")
		out = flag.String("out", "spectrogram.png", "output PNG file")

		fftSize  = flag.Int("fft", 2048, "FFT size, a power of two")
		hop      = flag.Int("hop", 0, "hop size in samples (0 = fft/4)")
		winName  = flag.String("window", "hann", "analysis window (hann, hamming, blackman, blackman-harris, rect)")
		zeroPad  = flag.Int("zeropad", 1, "zero-padding factor")
		gain     = flag.Float64("gain", 0, "display gain in dB")
		rangeDB  = flag.Float64("range", 80, "display range in dB")
		reassign = flag.Bool("reassign", false, "use spectral reassignment (3x the transform work)")

		width      = flag.Int("width", 0, "output width in pixels (0 = one per frame)")
		height     = flag.Int("height", 600, "output height in pixels")
		scheme     = flag.String("scheme", "magma", "color scheme (magma, viridis, inferno, hot, grayscale)")
		scaleName  = flag.String("scale", "log", "frequency scale (log, linear, mel, bark, erb)")
		minHz      = flag.Float64("min", 50, "minimum displayed frequency in Hz")
		maxHz      = flag.Float64("max", 8000, "maximum displayed frequency in Hz")
		freqGain   = flag.Float64("freq-gain", 0, "display boost above 1 kHz in dB per decade")
		downsample = flag.String("downsample", "max", "bin downsampling (max, average, nearest)")
		interpName = flag.String("interp", "linear", "bin interpolation (linear, nearest, cubic)")
		autoRange  = flag.Bool("autorange", false, "detect the displayed frequency range from the signal")

		demo     = flag.Bool("demo", false, "synthesize a demo sweep instead of reading a file")
		annotate = flag.Bool("annotate", false, "draw title and frequency axis labels")
		stats    = flag.Bool("stats", false, "print generation statistics")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specgram [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders a false-color spectrogram of an audio file as PNG.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  specgram -in song.wav -out song.png\n")
		fmt.Fprintf(os.Stderr, "  specgram -in song.flac -reassign -scheme viridis\n")
		fmt.Fprintf(os.Stderr, "  specgram -demo -stats\n")
	}
	flag.Parse()

	if *in == "" && !*demo {
		flag.Usage()
		os.Exit(2)
	}

	clip, err := loadClip(*in, *demo)
	if err != nil {
		die(err)
	}

	ctx, err := transform.NewReal(*fftSize)
	if err != nil {
		die(err)
	}

	algorithm := spectrogram.AlgorithmStandard
	if *reassign {
		algorithm = spectrogram.AlgorithmReassignment
	}

	gen, err := spectrogram.New(ctx,
		spectrogram.WithSampleRate(clip.SampleRate),
		spectrogram.WithHopSize(*hop),
		spectrogram.WithWindow(window.TypeFromName(*winName)),
		spectrogram.WithZeroPadding(*zeroPad),
		spectrogram.WithGain(*gain),
		spectrogram.WithRange(*rangeDB),
		spectrogram.WithAlgorithm(algorithm),
		spectrogram.WithTargetWidth(*width),
	)
	if err != nil {
		die(err)
	}

	res, err := gen.Generate(clip.Samples)
	if err != nil {
		die(err)
	}

	lo, hi := *minHz, *maxHz
	if *autoRange {
		lo, hi = spectrogram.DetectFrequencyRange(res)
	}

	img, err := render.Render(res, render.Config{
		Width:         *width,
		Height:        *height,
		Scheme:        colormap.SchemeFromName(*scheme),
		Scale:         freqscale.FromName(*scaleName),
		MinFreq:       lo,
		MaxFreq:       hi,
		FrequencyGain: *freqGain,
		Downsample:    render.DownsampleFromName(*downsample),
		Interpolation: interp.ModeFromName(*interpName),
	})
	if err != nil {
		die(err)
	}

	dc := gg.NewContextForRGBA(img)
	if *annotate {
		drawAnnotations(dc, clip, lo, hi)
	}
	if err := dc.SavePNG(*out); err != nil {
		die(fmt.Errorf("saving %s: %w", *out, err))
	}

	if *stats {
		printStats(os.Stdout, clip, res, *out)
	}
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "specgram: %v\n", err)
	os.Exit(1)
}

// loadClip decodes the input file, or synthesizes a five second log
// sweep in demo mode.
func loadClip(path string, demo bool) (*audio.Clip, error) {
	if !demo {
		return audio.Decode(path)
	}

	gen := signal.NewGenerator(core.WithSampleRate(demoSampleRate))
	samples, err := gen.LogSweep(100, 8000, 0.8, 5*int(demoSampleRate))
	if err != nil {
		return nil, err
	}

	return &audio.Clip{
		Samples:    samples,
		SampleRate: demoSampleRate,
		Channels:   1,
		Title:      "demo sweep 100 Hz - 8 kHz",
	}, nil
}

// drawAnnotations overlays the clip title and the displayed frequency
// bounds on the rendered image.
func drawAnnotations(dc *gg.Context, clip *audio.Clip, minHz, maxHz float64) {
	w := float64(dc.Width())
	h := float64(dc.Height())

	title := clip.Title
	if clip.Artist != "" {
		title = clip.Artist + " - " + title
	}

	// Shadowed text stays readable on bright palettes.
	drawLabel(dc, title, 6, 16)
	drawLabel(dc, formatHz(maxHz), 6, 30)
	drawLabel(dc, formatHz(minHz), 6, h-8)

	dc.SetRGBA(1, 1, 1, 0.4)
	dc.SetLineWidth(1)
	dc.DrawLine(0, h-1, w, h-1)
	dc.Stroke()
}

func drawLabel(dc *gg.Context, s string, x, y float64) {
	dc.SetRGB(0, 0, 0)
	dc.DrawString(s, x+1, y+1)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(s, x, y)
}

func formatHz(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.1f kHz", hz/1000)
	}
	return fmt.Sprintf("%.0f Hz", hz)
}

func printStats(w *os.File, clip *audio.Clip, res *spectrogram.Result, out string) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	source := clip.Path
	if source == "" {
		source = clip.Title
	}

	fmt.Fprintf(tw, "source\t%s\n", source)
	fmt.Fprintf(tw, "sample rate\t%.0f Hz\n", res.SampleRate)
	fmt.Fprintf(tw, "duration\t%v\n", res.Duration.Round(time.Millisecond))
	fmt.Fprintf(tw, "fft size\t%d\n", res.FFTSize)
	fmt.Fprintf(tw, "window size\t%d\n", res.WindowSize)
	fmt.Fprintf(tw, "hop size\t%d\n", res.HopSize)
	fmt.Fprintf(tw, "frames\t%d\n", res.NumFrames)
	fmt.Fprintf(tw, "bins\t%d\n", res.NumBins)
	fmt.Fprintf(tw, "transforms\t%d\n", res.Timing.Transforms)
	fmt.Fprintf(tw, "transform time\t%v\n", res.Timing.Transform.Round(time.Microsecond))
	fmt.Fprintf(tw, "total time\t%v\n", res.Timing.Total.Round(time.Microsecond))
	fmt.Fprintf(tw, "transforms/sec\t%.0f\n", res.Timing.TransformsPerSecond())
	fmt.Fprintf(tw, "output\t%s\n", out)

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "specgram: %v\n", err)
	}
}
