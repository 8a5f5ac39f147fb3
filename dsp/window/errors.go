package window

import (
	"errors"
	"fmt"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateVariant(v Variant) error {
	switch v {
	case VariantStandard, VariantDerivative, VariantTimeRamped:
		return nil
	}
	return fmt.Errorf("unknown window variant: %d", int(v))
}
