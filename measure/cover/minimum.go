package cover

import (
	"fmt"
	"math"
)

// MinimumWindowLength converts a duration in seconds to a window length in
// values of a series with the given rate: floor(seconds*rate).
func MinimumWindowLength(seconds, rate float64) int {
	return int(math.Floor(seconds * rate))
}

// SlidingMinimum returns, for i in [0, len(values)-k), the minimum of
// values[i:i+k]. The last k start positions are not emitted, so the output
// has len(values)-k elements. A window containing NaN yields NaN.
//
// k must satisfy 1 <= k < len(values).
func SlidingMinimum(values []float64, k int) ([]float64, error) {
	n := len(values)
	if k < 1 {
		return nil, fmt.Errorf("%w: minimum window %d", ErrInsufficientInput, k)
	}
	if k >= n {
		return nil, fmt.Errorf("%w: minimum window %d >= series length %d", ErrInsufficientInput, k, n)
	}

	out := make([]float64, n-k)

	// deque[head:] holds indices whose values increase strictly.
	deque := make([]int, 0, n)
	head := 0
	lastNaN := -1
	add := func(j int) {
		v := values[j]
		if math.IsNaN(v) {
			lastNaN = j
			return
		}
		for len(deque) > head && values[deque[len(deque)-1]] >= v {
			deque = deque[:len(deque)-1]
		}
		deque = append(deque, j)
	}

	for j := 0; j < k-1; j++ {
		add(j)
	}
	for i := range out {
		add(i + k - 1)
		for head < len(deque) && deque[head] < i {
			head++
		}
		if lastNaN >= i {
			out[i] = math.NaN()
			continue
		}
		out[i] = values[deque[head]]
	}

	return out, nil
}
