// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// [RealHalf] computes the exact-length DFT of a real signal through gonum's
// mixed-radix FFT, so the bin spacing is always sampleRate/len(x) and no zero
// padding is introduced. The remaining helpers operate on complex bins
// produced by any FFT backend.
package spectrum
