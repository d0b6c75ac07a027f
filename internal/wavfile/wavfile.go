// Package wavfile reads and writes RIFF/WAVE containers with go-audio/wav.
//
// It only deals with the container: the PCM payload is returned as raw bytes
// for pcm.Decode to interpret.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var errInvalidFile = errors.New("wavfile: not a valid WAVE file")

// Info describes the PCM stream of a WAVE file.
type Info struct {
	Channels   int
	SampleRate int
	BitDepth   int
	Frames     int
}

// Read parses the WAVE header of path and returns the stream description and
// the raw PCM payload.
func Read(path string) (Info, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode is Read for an already opened stream.
func Decode(r io.ReadSeeker) (Info, []byte, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return Info{}, nil, errInvalidFile
	}
	if err := d.FwdToPCM(); err != nil {
		return Info{}, nil, fmt.Errorf("wavfile: %w", err)
	}
	if d.PCMChunk == nil {
		return Info{}, nil, fmt.Errorf("wavfile: missing data chunk")
	}

	info := Info{
		Channels:   int(d.NumChans),
		SampleRate: int(d.SampleRate),
		BitDepth:   int(d.BitDepth),
	}

	payload := make([]byte, d.PCMChunk.Size)
	n, err := io.ReadFull(d.PCMChunk, payload)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Info{}, nil, fmt.Errorf("wavfile: reading data chunk: %w", err)
	}
	payload = payload[:n]

	if frameBytes := info.Channels * info.BitDepth / 8; frameBytes > 0 {
		info.Frames = len(payload) / frameBytes
	}

	return info, payload, nil
}

// Write16 writes mono 16-bit PCM samples to path.
func Write16(path string, sampleRate int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		_ = f.Close()
		return fmt.Errorf("wavfile: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("wavfile: %w", err)
	}

	return f.Close()
}
