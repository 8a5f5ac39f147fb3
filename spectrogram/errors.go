package spectrogram

import "errors"

// ErrInsufficientData reports audio shorter than one analysis window.
var ErrInsufficientData = errors.New("insufficient audio for one window")

var (
	errNilContext     = errors.New("transform context must not be nil")
	errComplexContext = errors.New("transform context must accept real input")
)
