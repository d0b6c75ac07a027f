package spectrogram

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation.
type Backend int

const (
	// BackendAuto uses algo-fft and falls back to gonum for sizes it cannot plan.
	BackendAuto Backend = iota
	// BackendAlgoFFT requires an algo-fft plan.
	BackendAlgoFFT
	// BackendGonum uses gonum's mixed-radix FFT, which accepts any size.
	BackendGonum
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "auto"
	case BackendAlgoFFT:
		return "algo-fft"
	case BackendGonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// transformer computes a forward complex DFT of a fixed size.
// Implementations are not safe for concurrent use.
type transformer interface {
	forward(dst, src []complex128) error
}

type algoTransformer struct {
	plan *algofft.Plan[complex128]
}

func (t algoTransformer) forward(dst, src []complex128) error {
	return t.plan.Forward(dst, src)
}

type gonumTransformer struct {
	fft *fourier.CmplxFFT
}

func (t gonumTransformer) forward(dst, src []complex128) error {
	t.fft.Coefficients(dst, src)
	return nil
}

func newTransformer(b Backend, n int) (transformer, error) {
	switch b {
	case BackendGonum:
		return gonumTransformer{fft: fourier.NewCmplxFFT(n)}, nil
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrogram: failed to create FFT plan: %w", err)
		}
		return algoTransformer{plan: plan}, nil
	case BackendAuto:
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return gonumTransformer{fft: fourier.NewCmplxFFT(n)}, nil
		}
		return algoTransformer{plan: plan}, nil
	default:
		return nil, fmt.Errorf("spectrogram: unknown backend: %d", int(b))
	}
}
