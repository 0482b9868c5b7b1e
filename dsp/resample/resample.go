package resample

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-tap/dsp/core"
	"gonum.org/v1/gonum/dsp/fourier"
)

var (
	// ErrInvalidLength indicates an empty input or a non-positive output length.
	ErrInvalidLength = errors.New("resample: invalid length")
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
)

// TargetLength returns the number of samples a signal of n samples at inRate
// occupies at outRate, rounded half-to-even and never less than one.
func TargetLength(n int, inRate, outRate float64) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidLength
	}
	if !validRate(inRate) || !validRate(outRate) {
		return 0, ErrInvalidRate
	}

	return max(1, core.RoundToInt(float64(n)*outRate/inRate)), nil
}

// ForRates converts input sampled at inRate to outRate. The output length is
// TargetLength(len(input), inRate, outRate).
func ForRates(input []float64, inRate, outRate float64) ([]float64, error) {
	num, err := TargetLength(len(input), inRate, outRate)
	if err != nil {
		return nil, err
	}

	return Resample(input, num)
}

// Resample returns input resampled to exactly num samples.
//
// When num equals len(input) a copy of input is returned.
func Resample(input []float64, num int) ([]float64, error) {
	nx := len(input)
	if nx == 0 || num <= 0 {
		return nil, ErrInvalidLength
	}
	if num == nx {
		return core.Clone(input), nil
	}

	x := fourier.NewFFT(nx).Coefficients(nil, input)
	y := make([]complex128, num/2+1)

	n := min(num, nx)
	copy(y[:n/2+1], x[:n/2+1])

	// For an even shared length the Nyquist bin of the shorter spectrum
	// stands for both the positive and negative half.
	if n%2 == 0 {
		switch {
		case num < nx:
			y[n/2] *= 2
		case num > nx:
			y[n/2] *= 0.5
		}
	}

	out := fourier.NewFFT(num).Sequence(nil, y)

	// Sequence is unnormalised: 1/num for the inverse transform times num/nx
	// for the change in length.
	scale := 1 / float64(nx)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

func validRate(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}
