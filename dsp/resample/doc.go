// Package resample provides band-limited sample-rate conversion of finite
// signals by spectral truncation or zero-extension.
//
// The whole signal is transformed with an exact-length real FFT, the spectrum
// is cut (downsampling) or zero-extended (upsampling) to the target length and
// transformed back. The signal is treated as one period of a periodic
// sequence, so the output has exactly the requested number of samples and a
// band-limited periodic input is reproduced without interpolation error.
//
// Common workflows:
//   - Resample(input, num) for a fixed output length
//   - ForRates(input, inRate, outRate) to convert between sample rates
//   - TargetLength(n, inRate, outRate) to predict the output length
package resample
