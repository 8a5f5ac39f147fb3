package render

import "errors"

// ErrEmptyResult reports a spectrogram result with no usable matrix.
var ErrEmptyResult = errors.New("result holds no spectrogram data")

var errNilResult = errors.New("result must not be nil")
