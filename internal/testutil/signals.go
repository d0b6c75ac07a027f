package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Quantize16 rounds samples in [-1, 1] to signed 16-bit integers.
func Quantize16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, v := range samples {
		q := math.Round(v * math.MaxInt16)
		q = math.Max(math.MinInt16, math.Min(math.MaxInt16, q))
		out[i] = int16(q)
	}
	return out
}
