package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Half is the lower half of the DFT of a real signal of length N: bins
// 0 .. N/2-1 (integer division), i.e. DC up to but excluding the Nyquist
// mirror point.
type Half struct {
	// Freqs holds the bin centre frequency in Hz: k * sampleRate / N.
	Freqs []float64
	// Magnitudes holds |X[k]| (unnormalised DFT magnitude).
	Magnitudes []float64
}

// Len returns the bin count.
func (h Half) Len() int { return len(h.Magnitudes) }

// RealHalf transforms x with a DFT of exactly len(x) points and returns the
// first len(x)/2 bins. Signals shorter than two samples yield an empty Half.
func RealHalf(x []float64, sampleRate float64) Half {
	n := len(x)
	half := n / 2
	if half == 0 {
		return Half{}
	}

	coeffs := fourier.NewFFT(n).Coefficients(nil, x)

	return Half{
		Freqs:      BinFrequencies(n, sampleRate)[:half],
		Magnitudes: Magnitude(coeffs[:half]),
	}
}

// BinFrequencies returns the centre frequency of the first n/2+1 bins of an
// n-point DFT sampled at sampleRate.
func BinFrequencies(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}

	out := make([]float64, n/2+1)
	df := sampleRate / float64(n)
	for k := range out {
		out[k] = float64(k) * df
	}
	return out
}
