// Package conv provides linear convolution and correlation routines.
//
// Two strategies are offered:
//
//   - Direct: simple O(N*M) time-domain evaluation, best for short inputs
//   - FFT: zero-padded power-of-two transforms, efficient for long inputs
//
// # Usage
//
//	result, err := conv.Direct(signal, kernel)  // Linear convolution
//	result, err := conv.Correlate(a, b)         // Cross-correlation, auto-selected
//	lags, err := conv.AutoCorrelateLags(x)      // Autocorrelation for lags >= 0
//
// # Algorithm Selection
//
// [Correlate] uses direct evaluation while the shorter input has at most 64
// samples and the FFT path otherwise. Both produce the same linear (not
// circular) result up to floating-point rounding.
package conv
