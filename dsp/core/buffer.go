package core

// Clone returns a copy of buf. A nil or empty input yields an empty, non-nil slice.
func Clone(buf []float64) []float64 {
	out := make([]float64, len(buf))
	copy(out, buf)
	return out
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}
