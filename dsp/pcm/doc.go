// Package pcm decodes raw 16-bit mono PCM payloads into normalized waveforms.
//
// Container parsing (RIFF/WAV headers) is left to the caller; this package
// only interprets the sample bytes.
package pcm
