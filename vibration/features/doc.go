// Package features extracts the fixed-layout feature vector a material
// classifier is trained on.
//
// The layout is positional and must match between training and inference:
//
//	peak_freq, decay_rate, energy,
//	[spectral_centroid], [spectral_bandwidth], [zcr],
//	[peak_freq_1 .. peak_freq_k], [ac_lag_s]
//
// Bracketed groups are present only when selected. A [Selection] records the
// chosen extras and a [Pipeline] bundles it with the preprocessing settings
// into the versioned descriptor persisted next to a trained model.
//
// Extraction produces a named [Set] first; the [Vector] is read off the Set,
// so names and offsets cannot drift apart.
package features
