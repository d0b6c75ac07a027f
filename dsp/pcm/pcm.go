package pcm

import (
	"encoding/binary"
	"fmt"
)

const (
	// BitDepth is the only accepted sample width.
	BitDepth = 16
	// Channels is the only accepted channel count.
	Channels = 1

	bytesPerSample = BitDepth / 8
)

// Waveform is a decoded mono signal in the range (-1, 1).
type Waveform struct {
	Samples    []float64
	SampleRate int
}

// Len returns the sample count.
func (w Waveform) Len() int { return len(w.Samples) }

// DurationSeconds returns the duration truncated to whole seconds.
//
// Fractional seconds are dropped; derived series rates are computed against
// this value.
func (w Waveform) DurationSeconds() int {
	if w.SampleRate <= 0 {
		return 0
	}
	return len(w.Samples) / w.SampleRate
}

// Scale returns the normalization divisor for a signed integer of the given
// bit depth: 2^(bitDepth-1) + 1.
func Scale(bitDepth int) float64 {
	return float64(int64(1)<<(bitDepth-1)) + 1.0
}

// Decode interprets data as signed little-endian 16-bit mono samples.
//
// At most frames samples are read; a shorter payload yields fewer samples.
// Each sample s becomes s / (2^15 + 1). data is not modified.
func Decode(data []byte, channels, bitDepth, frames, sampleRate int) (Waveform, error) {
	if bitDepth != BitDepth {
		return Waveform{}, &UnsupportedFormatError{Param: "bit depth", Value: bitDepth}
	}
	if channels != Channels {
		return Waveform{}, &UnsupportedFormatError{Param: "channels", Value: channels}
	}
	if sampleRate <= 0 {
		return Waveform{}, fmt.Errorf("pcm: sample rate must be > 0: %d", sampleRate)
	}
	if frames < 0 {
		return Waveform{}, fmt.Errorf("pcm: frame count must be >= 0: %d", frames)
	}

	n := len(data) / bytesPerSample
	if frames < n {
		n = frames
	}
	if n == 0 {
		return Waveform{}, fmt.Errorf("%w: %d bytes, %d frames", ErrInsufficientInput, len(data), frames)
	}

	scale := Scale(bitDepth)
	out := make([]float64, n)
	for i := range out {
		s := int16(binary.LittleEndian.Uint16(data[i*bytesPerSample:]))
		out[i] = float64(s) / scale
	}

	return Waveform{Samples: out, SampleRate: sampleRate}, nil
}

// Encode16 packs samples as signed little-endian 16-bit PCM.
func Encode16(samples []int16) []byte {
	out := make([]byte, len(samples)*bytesPerSample)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(out[i*bytesPerSample:], uint16(s))
	}
	return out
}
