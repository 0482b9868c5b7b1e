package preprocess

import (
	"fmt"

	"github.com/cwbudde/algo-tap/dsp/core"
	"github.com/cwbudde/algo-tap/dsp/resample"
	"github.com/cwbudde/algo-tap/dsp/window"
	stime "github.com/cwbudde/algo-tap/stats/time"
)

// WarningCode classifies a non-fatal preprocessing diagnostic.
type WarningCode string

// WarnUpsampling is reported when the resample rate exceeds the capture
// rate. The result carries no information above the original Nyquist
// frequency.
const WarnUpsampling WarningCode = "upsampling"

// Warning is a non-fatal diagnostic produced while preprocessing.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// Result is the canonical signal and the rate it is sampled at.
type Result struct {
	Samples    []float64
	SampleRate float64
	Warnings   []Warning
}

// Detrend returns x minus its arithmetic mean.
func Detrend(x []float64) []float64 {
	out := core.Clone(x)
	mean := stime.Mean(x)
	if mean == 0 {
		return out
	}
	for i := range out {
		out[i] -= mean
	}
	return out
}

// ApplyWindow returns x multiplied by a window of kind t sized to len(x).
// TypeNone and unknown kinds return a copy.
func ApplyWindow(x []float64, t window.Type) []float64 {
	out := core.Clone(x)
	window.Apply(t, out)
	return out
}

// Resample converts x from srcRate to dstRate, returning the new samples and
// rate. dstRate <= 0 leaves x unchanged at srcRate. Upsampling also returns
// a warning.
func Resample(x []float64, srcRate, dstRate float64) ([]float64, float64, *Warning) {
	if dstRate <= 0 || len(x) == 0 || srcRate <= 0 {
		return core.Clone(x), srcRate, nil
	}

	var warn *Warning
	if dstRate > srcRate {
		warn = &Warning{
			Code:    WarnUpsampling,
			Message: fmt.Sprintf("upsampling from %g Hz to %g Hz; original rate may limit fidelity", srcRate, dstRate),
		}
	}

	out, err := resample.ForRates(x, srcRate, dstRate)
	if err != nil {
		// Rates and length were checked above.
		return core.Clone(x), srcRate, warn
	}
	return out, dstRate, warn
}

// NormalizeLength crops or zero-pads x to exactly n samples. n <= 0 or
// n == len(x) returns a copy.
func NormalizeLength(x []float64, n int, align Align) []float64 {
	cur := len(x)
	if n <= 0 || n == cur {
		return core.Clone(x)
	}

	if cur > n {
		start := 0
		switch align {
		case AlignLeft:
		case AlignRight:
			start = cur - n
		default:
			start = (cur - n) / 2
		}
		return core.Clone(x[start : start+n])
	}

	out := make([]float64, n)
	offset := 0
	switch align {
	case AlignLeft:
	case AlignRight:
		offset = n - cur
	default:
		offset = (n - cur) / 2
	}
	copy(out[offset:], x)
	return out
}

// Run applies the stages selected by cfg in order: detrend, window,
// resample, normalize length. Run does not validate its input; see
// [Validate].
func Run(x []float64, sampleRate float64, cfg Config) Result {
	out := x
	rate := sampleRate

	if cfg.Detrend {
		out = Detrend(out)
	}

	// Always copies, so out no longer aliases x from here on.
	out = ApplyWindow(out, cfg.Window)

	var warnings []Warning
	if cfg.ResampleRateHz > 0 {
		var warn *Warning
		out, rate, warn = Resample(out, rate, cfg.ResampleRateHz)
		if warn != nil {
			warnings = append(warnings, *warn)
		}
	}

	if cfg.TargetLength > 0 {
		out = NormalizeLength(out, cfg.TargetLength, cfg.Align)
	}

	return Result{Samples: out, SampleRate: rate, Warnings: warnings}
}
