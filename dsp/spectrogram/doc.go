// Package spectrogram computes short-time magnitude spectra of a mono signal.
//
// Frames are tapered with a symmetric Hamming window, transformed with a
// complex FFT of the window length and reduced to the lower half of the
// magnitude spectrum. Frames are independent and are computed in parallel
// into a flat, frame-major arena.
package spectrogram
