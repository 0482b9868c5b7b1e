package features

import (
	"fmt"

	"github.com/cwbudde/algo-tap/dsp/conv"
	"github.com/cwbudde/algo-tap/dsp/spectrum"
	"github.com/cwbudde/algo-tap/stats/frequency"
	stime "github.com/cwbudde/algo-tap/stats/time"
	"github.com/cwbudde/algo-tap/vibration/preprocess"
)

// ErrInvalidInput is returned for signals shorter than two samples, a
// non-positive sample rate or non-finite values. It is the same value as
// [preprocess.ErrInvalidInput].
var ErrInvalidInput = preprocess.ErrInvalidInput

// MinSamples is the shortest signal features can be extracted from.
const MinSamples = 2

func validate(x []float64, sampleRate float64) error {
	if err := preprocess.Validate(x, sampleRate); err != nil {
		return err
	}
	if len(x) < MinSamples {
		return fmt.Errorf("%w: need at least %d samples, got %d", ErrInvalidInput, MinSamples, len(x))
	}
	return nil
}

// Extract returns the feature vector of the canonical signal x sampled at
// sampleRate. It equals ExtractNamed(x, sampleRate, sel).Vector().
func Extract(x []float64, sampleRate float64, sel Selection) (Vector, error) {
	set, err := ExtractNamed(x, sampleRate, sel)
	if err != nil {
		return nil, err
	}
	return set.Vector(), nil
}

// ExtractNamed returns the named features of the canonical signal x sampled
// at sampleRate, in vector order.
func ExtractNamed(x []float64, sampleRate float64, sel Selection) (Set, error) {
	if err := validate(x, sampleRate); err != nil {
		return Set{}, err
	}

	set := newSet(sel.Width())
	half := spectrum.RealHalf(x, sampleRate)

	// The core peak keeps the DC bin; the extras below do not.
	set.add(NamePeakFreq, frequency.PeakFrequency(half.Freqs, half.Magnitudes))
	set.add(NameDecayRate, stime.DecayRate(x))
	set.add(NameEnergy, stime.Energy(x))

	if sel.Extras&AllExtras == 0 {
		return set, nil
	}

	freqs, mags := frequency.ExcludeDC(half.Freqs, half.Magnitudes)

	if sel.Has(ExtraSpectralCentroid) {
		set.add(NameSpectralCentroid, frequency.Centroid(freqs, mags))
	}
	if sel.Has(ExtraSpectralBandwidth) {
		set.add(NameSpectralBandwidth, frequency.Spread(freqs, mags))
	}
	if sel.Has(ExtraZCR) {
		set.add(NameZCR, stime.ZeroCrossingRate(x, sampleRate))
	}
	if sel.Has(ExtraTopPeaks) {
		for i, f := range frequency.TopPeaks(freqs, mags, sel.TopK()) {
			set.add(TopPeakName(i+1), f)
		}
	}
	if sel.Has(ExtraACLag) {
		lag, err := autocorrelationLag(x, sampleRate)
		if err != nil {
			return Set{}, err
		}
		set.add(NameACLag, lag)
	}

	return set, nil
}

// autocorrelationLag returns the lag in seconds of the autocorrelation
// maximum, ignoring lag 0.
func autocorrelationLag(x []float64, sampleRate float64) (float64, error) {
	lags, err := conv.AutoCorrelateLags(x)
	if err != nil {
		return 0, fmt.Errorf("features: autocorrelation: %w", err)
	}
	if len(lags) < 2 {
		return 0, nil
	}

	idx, _ := conv.FindPeak(lags[1:])
	return float64(idx+1) / sampleRate, nil
}
