package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPowerOfTwo is returned when a context size is not a power of two.
	ErrNotPowerOfTwo = errors.New("transform size must be a power of two")
	// ErrSizeTooSmall is returned when a context size is below the minimum.
	ErrSizeTooSmall = errors.New("transform size too small")
)

const minSize = 4

func validateSize(size int) error {
	if size < minSize {
		return fmt.Errorf("transform: size %d: %w", size, ErrSizeTooSmall)
	}
	if !isPowerOfTwo(size) {
		return fmt.Errorf("transform: size %d: %w", size, ErrNotPowerOfTwo)
	}
	return nil
}
