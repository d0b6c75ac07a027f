// Package cover computes the spectral cover of a recording.
//
// The spectral cover of a magnitude frame X with frequency axis f is
//
//	sum((X[k]*f[k])^2) / (sum(X[k]))^gamma
//
// It was introduced for water-flow detection from wearable sensors (Guyot et
// al., CBMI 2012). [Run] chains PCM waveform, spectrogram, reduction and the
// optional forward sliding minimum; [WriteTSV] renders a series as
// tab-delimited time_in, time_out, value lines.
package cover
