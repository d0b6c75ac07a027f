package spectrogram

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/spectralcover/dsp/window"
	"github.com/cwbudde/spectralcover/internal/parallel"
)

// ErrInsufficientInput reports a signal too short to hold a single frame.
var ErrInsufficientInput = errors.New("spectrogram: insufficient input length")

// Spectrogram is a dense magnitude spectrogram indexed by [bin, frame].
//
// Storage is one fixed-size buffer per frame laid out back to back.
type Spectrogram struct {
	bins   int
	frames int
	data   []float64
}

// Bins returns the number of retained frequency bins (floor(window/2)).
func (s *Spectrogram) Bins() int { return s.bins }

// Frames returns the number of analysis frames.
func (s *Spectrogram) Frames() int { return s.frames }

// At returns the magnitude of bin k in frame m.
func (s *Spectrogram) At(k, m int) float64 {
	return s.data[m*s.bins+k]
}

// Frame returns the magnitudes of frame m. The slice aliases internal storage
// and must not be modified.
func (s *Spectrogram) Frame(m int) []float64 {
	off := m * s.bins
	return s.data[off : off+s.bins : off+s.bins]
}

// Option configures Build.
type Option func(*config)

type config struct {
	workers int
	backend Backend
}

// WithWorkers bounds the number of goroutines used. n <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithBackend selects the FFT implementation.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// FrameCount returns how many frames fit a signal of the given length: the
// number of frame ends windowSize, windowSize+hop, ... strictly below length.
func FrameCount(length, windowSize, hopSize int) int {
	if windowSize <= 0 || hopSize <= 0 || length <= windowSize {
		return 0
	}
	return 1 + (length-windowSize-1)/hopSize
}

// Build computes the magnitude spectrogram of samples.
//
// Frame m spans samples [m*hopSize, m*hopSize+windowSize).
// Samples after the last complete step are dropped; nothing is zero-padded.
func Build(ctx context.Context, samples []float64, windowSize, hopSize int, opts ...Option) (*Spectrogram, error) {
	if windowSize < 2 {
		return nil, fmt.Errorf("spectrogram: window size must be >= 2: %d", windowSize)
	}
	if hopSize < 1 {
		return nil, fmt.Errorf("spectrogram: hop size must be > 0: %d", hopSize)
	}

	cfg := config{backend: BackendAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	frames := FrameCount(len(samples), windowSize, hopSize)
	if frames == 0 {
		return nil, fmt.Errorf("%w: length %d, window %d, hop %d",
			ErrInsufficientInput, len(samples), windowSize, hopSize)
	}

	coeffs, err := window.Hamming(windowSize)
	if err != nil {
		return nil, fmt.Errorf("spectrogram: %w", err)
	}

	bins := windowSize / 2
	s := &Spectrogram{
		bins:   bins,
		frames: frames,
		data:   make([]float64, frames*bins),
	}

	err = parallel.Blocks(ctx, frames, cfg.workers, func(ctx context.Context, lo, hi int) error {
		fft, err := newTransformer(cfg.backend, windowSize)
		if err != nil {
			return err
		}

		tapered := make([]float64, windowSize)
		in := make([]complex128, windowSize)
		out := make([]complex128, windowSize)
		re := make([]float64, bins)
		im := make([]float64, bins)

		for m := lo; m < hi; m++ {
			if err := ctx.Err(); err != nil {
				return err
			}

			end := windowSize + m*hopSize
			if err := window.ApplyTo(tapered, samples[end-windowSize:end], coeffs); err != nil {
				return err
			}
			for i, v := range tapered {
				in[i] = complex(v, 0)
			}

			if err := fft.forward(out, in); err != nil {
				return fmt.Errorf("spectrogram: frame %d: %w", m, err)
			}

			for k := range bins {
				re[k] = real(out[k])
				im[k] = imag(out[k])
			}
			vecmath.Magnitude(s.data[m*bins:(m+1)*bins], re, im)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}
