package cover

import (
	"fmt"
	"math"

	"github.com/cwbudde/spectralcover/dsp/spectrogram"
)

const (
	defaultWindowSize     = 512
	defaultHopSize        = 256
	defaultGamma          = 1.5
	defaultMinimumSeconds = 2.0
)

// Config holds the parameters of one spectral cover run.
type Config struct {
	// WindowSize is the analysis window length in samples.
	WindowSize int
	// HopSize is the stride between consecutive windows in samples.
	HopSize int
	// Gamma is the exponent applied to the total frame magnitude.
	Gamma float64
	// Minimum enables the forward sliding-minimum series.
	Minimum bool
	// MinimumSeconds is the sliding-minimum window duration.
	MinimumSeconds float64
	// Workers bounds per-frame parallelism; <= 0 means GOMAXPROCS.
	Workers int
	// Degenerate decides the value of zero-magnitude frames.
	Degenerate DegeneratePolicy
	// Backend selects the FFT implementation.
	Backend spectrogram.Backend
}

// DefaultConfig returns the parameters used in the original study.
func DefaultConfig() Config {
	return Config{
		WindowSize:     defaultWindowSize,
		HopSize:        defaultHopSize,
		Gamma:          defaultGamma,
		MinimumSeconds: defaultMinimumSeconds,
	}
}

// Validate reports the first invalid parameter.
func (c Config) Validate() error {
	if c.WindowSize < 2 {
		return fmt.Errorf("cover: window size must be >= 2: %d", c.WindowSize)
	}
	if c.HopSize < 1 {
		return fmt.Errorf("cover: hop size must be > 0: %d", c.HopSize)
	}
	if math.IsNaN(c.Gamma) || math.IsInf(c.Gamma, 0) {
		return fmt.Errorf("cover: gamma must be finite: %f", c.Gamma)
	}
	if c.Minimum && !(c.MinimumSeconds > 0) {
		return fmt.Errorf("cover: minimum duration must be > 0: %f", c.MinimumSeconds)
	}
	return nil
}
