// Package time computes time-domain descriptors of a sampled signal.
package time

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EnvelopeFloor is added to |x| before taking the logarithm in [DecayRate]
// so exact zeros stay finite.
const EnvelopeFloor = 1e-8

// Mean returns the arithmetic mean of signal, or 0 for an empty signal.
func Mean(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return stat.Mean(signal, nil)
}

// Energy returns the sum of squared samples.
func Energy(signal []float64) float64 {
	return floats.Dot(signal, signal)
}

// ZeroCrossings counts sign changes between adjacent samples. An exact zero
// counts as positive, so a signal touching zero from above does not cross
// and one passing through zero crosses once.
func ZeroCrossings(signal []float64) int {
	if len(signal) < 2 {
		return 0
	}

	count := 0
	prev := signal[0] >= 0
	for _, x := range signal[1:] {
		cur := x >= 0
		if cur != prev {
			count++
		}
		prev = cur
	}
	return count
}

// ZeroCrossingRate returns ZeroCrossings(signal) / len(signal) * sampleRate,
// i.e. crossings per second.
func ZeroCrossingRate(signal []float64, sampleRate float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	return float64(ZeroCrossings(signal)) / float64(len(signal)) * sampleRate
}

// DecayRate fits a least-squares line to log(|x[i]| + EnvelopeFloor) against
// the sample index i and returns the negated slope, in nepers per sample.
//
// For x[i] = A*exp(-d*i/fs)*osc(i) the result approximates d/fs. No goodness
// of fit is checked; the value is only meaningful for roughly exponential
// envelopes. Signals shorter than two samples yield 0.
func DecayRate(signal []float64) float64 {
	n := len(signal)
	if n < 2 {
		return 0
	}

	idx := make([]float64, n)
	logEnv := make([]float64, n)
	for i, x := range signal {
		idx[i] = float64(i)
		logEnv[i] = math.Log(math.Abs(x) + EnvelopeFloor)
	}

	_, slope := stat.LinearRegression(idx, logEnv, nil, false)
	return -slope
}
