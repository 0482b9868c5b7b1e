// Package frequency computes spectral descriptors from a magnitude spectrum
// given together with the frequency of every bin.
//
// Passing explicit frequencies keeps the descriptors independent of how the
// bins were produced (one-sided, truncated, DC-filtered).
package frequency

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DCThreshold is the absolute frequency in Hz at or below which a bin is
// treated as DC by [ExcludeDC].
const DCThreshold = 1e-9

// PeakFrequency returns the frequency of the largest magnitude; the lowest
// bin wins on ties. An empty spectrum yields 0.
func PeakFrequency(freqs, magnitude []float64) float64 {
	if len(magnitude) == 0 {
		return 0
	}
	return freqs[floats.MaxIdx(magnitude)]
}

// ExcludeDC drops bins whose |frequency| <= DCThreshold. When no bin would
// survive, the input is returned unchanged so the descriptors still have
// something to work on. The returned slices may alias the input.
func ExcludeDC(freqs, magnitude []float64) (outFreqs, outMag []float64) {
	outFreqs = make([]float64, 0, len(freqs))
	outMag = make([]float64, 0, len(magnitude))
	for i, f := range freqs {
		if math.Abs(f) > DCThreshold {
			outFreqs = append(outFreqs, f)
			outMag = append(outMag, magnitude[i])
		}
	}

	if len(outFreqs) == 0 {
		return freqs, magnitude
	}
	return outFreqs, outMag
}

// Centroid returns the magnitude-weighted mean frequency:
//
//	centroid = sum(f_i * |X_i|) / sum(|X_i|)
//
// A spectrum with zero total magnitude yields 0.
func Centroid(freqs, magnitude []float64) float64 {
	sum := floats.Sum(magnitude)
	if !(sum > 0) {
		return 0
	}
	return floats.Dot(freqs, magnitude) / sum
}

// Spread returns the magnitude-weighted standard deviation of frequency
// around [Centroid]. A spectrum with zero total magnitude yields 0.
func Spread(freqs, magnitude []float64) float64 {
	sum := floats.Sum(magnitude)
	if !(sum > 0) {
		return 0
	}

	cent := floats.Dot(freqs, magnitude) / sum
	weightedSqSum := 0.0
	for i, v := range magnitude {
		diff := freqs[i] - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sum)
}

// TopPeaks returns the frequencies of the k largest magnitudes, ordered by
// descending magnitude; equal magnitudes keep ascending bin order. When k
// exceeds the bin count the result is right-padded with zeros to length k.
// k < 1 yields nil.
func TopPeaks(freqs, magnitude []float64, k int) []float64 {
	if k < 1 {
		return nil
	}

	order := make([]int, len(magnitude))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return magnitude[order[a]] > magnitude[order[b]]
	})

	out := make([]float64, k)
	for i := 0; i < k && i < len(order); i++ {
		out[i] = freqs[order[i]]
	}
	return out
}
