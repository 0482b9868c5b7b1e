package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FirstNonFinite returns the index of the first NaN or ±Inf value in buf,
// or -1 when every value is finite.
func FirstNonFinite(buf []float64) int {
	for i, v := range buf {
		if !IsFinite(v) {
			return i
		}
	}
	return -1
}

// RoundToInt rounds x to the nearest integer, ties to even.
func RoundToInt(x float64) int {
	return int(math.RoundToEven(x))
}
