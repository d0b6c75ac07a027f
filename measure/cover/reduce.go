package cover

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/spectralcover/dsp/spectrogram"
	"github.com/cwbudde/spectralcover/internal/parallel"
	"gonum.org/v1/gonum/floats"
)

// DegeneratePolicy decides the value of a frame with zero total magnitude.
type DegeneratePolicy int

const (
	// DegenerateZero emits 0. The numerator of such a frame is also 0.
	DegenerateZero DegeneratePolicy = iota
	// DegenerateNaN emits NaN.
	DegenerateNaN
	// DegenerateError aborts the reduction with a *DegenerateFrameError.
	DegenerateError
)

// String returns the policy name as accepted by [ParseDegeneratePolicy].
func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateZero:
		return "zero"
	case DegenerateNaN:
		return "nan"
	case DegenerateError:
		return "error"
	default:
		return fmt.Sprintf("DegeneratePolicy(%d)", int(p))
	}
}

// ParseDegeneratePolicy parses "zero", "nan" or "error".
func ParseDegeneratePolicy(s string) (DegeneratePolicy, error) {
	switch s {
	case "zero":
		return DegenerateZero, nil
	case "nan":
		return DegenerateNaN, nil
	case "error":
		return DegenerateError, nil
	}
	return 0, fmt.Errorf("cover: unknown degenerate policy %q", s)
}

// FrequencyAxis returns n equally spaced frequencies from fmax/n to fmax
// inclusive, where fmax = sampleRate/2. The axis does not start at 0 Hz.
func FrequencyAxis(n int, sampleRate float64) []float64 {
	if n <= 0 {
		return nil
	}
	fmax := sampleRate / 2
	lo := fmax / float64(n)
	if n == 1 {
		return []float64{lo}
	}
	axis := floats.Span(make([]float64, n), lo, fmax)
	axis[n-1] = fmax
	return axis
}

// Value returns the spectral cover of one magnitude frame.
//
// freq must have the same length as frame. ok is false when the total
// magnitude is zero; value is then undefined.
func Value(frame, freq []float64, gamma float64) (value float64, ok bool) {
	total := floats.Sum(frame)
	if total == 0 {
		return 0, false
	}

	num := 0.0
	for k, v := range frame {
		x := v * freq[k]
		num += x * x
	}

	return num / math.Pow(total, gamma), true
}

// ReduceOption configures Reduce.
type ReduceOption func(*reduceConfig)

type reduceConfig struct {
	workers    int
	degenerate DegeneratePolicy
}

// WithReduceWorkers bounds the number of goroutines used. n <= 0 means GOMAXPROCS.
func WithReduceWorkers(n int) ReduceOption {
	return func(c *reduceConfig) {
		c.workers = n
	}
}

// WithDegeneratePolicy selects how zero-magnitude frames are reported.
func WithDegeneratePolicy(p DegeneratePolicy) ReduceOption {
	return func(c *reduceConfig) {
		c.degenerate = p
	}
}

// Reduce maps every frame of s to its spectral cover value.
func Reduce(ctx context.Context, s *spectrogram.Spectrogram, sampleRate, gamma float64, opts ...ReduceOption) ([]float64, error) {
	if s == nil || s.Frames() == 0 {
		return nil, fmt.Errorf("%w: empty spectrogram", ErrInsufficientInput)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("cover: sample rate must be > 0: %f", sampleRate)
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("cover: gamma must be finite: %f", gamma)
	}

	var cfg reduceConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	switch cfg.degenerate {
	case DegenerateZero, DegenerateNaN, DegenerateError:
	default:
		return nil, fmt.Errorf("cover: unknown degenerate policy: %d", int(cfg.degenerate))
	}

	freq := FrequencyAxis(s.Bins(), sampleRate)
	out := make([]float64, s.Frames())

	err := parallel.Blocks(ctx, s.Frames(), cfg.workers, func(ctx context.Context, lo, hi int) error {
		for m := lo; m < hi; m++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, ok := Value(s.Frame(m), freq, gamma)
			if !ok {
				switch cfg.degenerate {
				case DegenerateNaN:
					v = math.NaN()
				case DegenerateError:
					return &DegenerateFrameError{Frame: m}
				default:
					v = 0
				}
			}
			out[m] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}
