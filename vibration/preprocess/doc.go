// Package preprocess turns a raw vibration recording into the canonical
// signal the feature extractor analyses.
//
// Stages run in a fixed order: detrend, window, resample, length
// normalisation. Windowing precedes resampling because the window is shaped
// for the captured sample count; length normalisation is last because it
// fixes the exact sample count seen by feature extraction. Every stage
// returns a new slice and leaves its input untouched.
//
// Settings that are absent skip their stage. Unknown window names degrade to
// no window at all.
package preprocess
