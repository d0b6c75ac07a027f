package cover

import (
	"context"
	"errors"
	"fmt"

	"github.com/cwbudde/spectralcover/dsp/pcm"
	"github.com/cwbudde/spectralcover/dsp/spectrogram"
)

// Result holds the series produced by one run.
type Result struct {
	Cover Series
	// Minimum is nil unless Config.Minimum is set.
	Minimum *Series
	// Frames and Bins describe the intermediate spectrogram.
	Frames int
	Bins   int
}

// Run computes the spectral cover of w and, if requested, its sliding minimum.
//
// Both series are rated against the waveform duration truncated to whole
// seconds. The minimum series rate is len(minimum)/duration, not a rescaling
// of the cover rate.
func Run(ctx context.Context, w pcm.Waveform, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if w.SampleRate <= 0 {
		return nil, fmt.Errorf("cover: sample rate must be > 0: %d", w.SampleRate)
	}

	duration := w.DurationSeconds()
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %d samples at %d Hz is shorter than one second",
			ErrInsufficientInput, w.Len(), w.SampleRate)
	}

	spec, err := spectrogram.Build(ctx, w.Samples, cfg.WindowSize, cfg.HopSize,
		spectrogram.WithWorkers(cfg.Workers),
		spectrogram.WithBackend(cfg.Backend),
	)
	if errors.Is(err, spectrogram.ErrInsufficientInput) {
		return nil, fmt.Errorf("%w: %w", ErrInsufficientInput, err)
	}
	if err != nil {
		return nil, fmt.Errorf("cover: %w", err)
	}

	values, err := Reduce(ctx, spec, float64(w.SampleRate), cfg.Gamma,
		WithReduceWorkers(cfg.Workers),
		WithDegeneratePolicy(cfg.Degenerate),
	)
	if err != nil {
		return nil, err
	}

	series, err := NewSeries(values, duration)
	if err != nil {
		return nil, err
	}

	res := &Result{Cover: series, Frames: spec.Frames(), Bins: spec.Bins()}
	if !cfg.Minimum {
		return res, nil
	}

	k := MinimumWindowLength(cfg.MinimumSeconds, series.Rate())
	mins, err := SlidingMinimum(series.Values, k)
	if err != nil {
		return nil, fmt.Errorf("cover: minimum over %g s: %w", cfg.MinimumSeconds, err)
	}

	minSeries, err := NewSeries(mins, duration)
	if err != nil {
		return nil, err
	}
	res.Minimum = &minSeries

	return res, nil
}
