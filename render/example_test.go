package render_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-spectrogram/render"
	"github.com/cwbudde/algo-spectrogram/spectrogram"
)

func ExampleRender() {
	res := &spectrogram.Result{
		Mat:        make([]float64, 8*257),
		NumFrames:  8,
		NumBins:    257,
		SampleRate: 44100,
	}

	img, err := render.Render(res, render.Config{Width: 320, Height: 100})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(img.Bounds().Dx(), img.Bounds().Dy())
	// Output: 320 100
}
