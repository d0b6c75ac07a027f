// Package window generates the Hamming taper applied to analysis frames.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var hammingCoeffs = []float64{0.54, -0.46}

// Hamming returns symmetric Hamming window coefficients,
// w[n] = 0.54 - 0.46*cos(2*pi*n/(N-1)). A single-sample window is [1].
func Hamming(size int) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	for i := range out {
		out[i] = cosineFromCoeffs(samplePosition(i, size), hammingCoeffs)
	}

	return out, nil
}

// ApplyTo writes samples*coeffs into dst.
func ApplyTo(dst, samples, coeffs []float64) error {
	if len(samples) != len(coeffs) || len(dst) != len(samples) {
		return errMismatchedLength
	}

	vecmath.MulBlock(dst, samples, coeffs)

	return nil
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}
	return float64(n) / float64(size-1)
}
