package preprocess

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-tap/dsp/core"
)

// ErrInvalidInput indicates a signal the pipeline cannot accept: empty, a
// non-positive or non-finite sample rate, or a non-finite sample.
var ErrInvalidInput = errors.New("preprocess: invalid input")

// Validate checks the caller contract of [Run]. Errors wrap ErrInvalidInput.
func Validate(x []float64, sampleRate float64) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: empty signal", ErrInvalidInput)
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidInput, sampleRate)
	}
	if i := core.FirstNonFinite(x); i >= 0 {
		return fmt.Errorf("%w: non-finite sample at index %d", ErrInvalidInput, i)
	}
	return nil
}
