package cover

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/spectralcover/internal/testutil"
)

func bruteMinimum(values []float64, k int) []float64 {
	out := make([]float64, len(values)-k)
	for i := range out {
		m := values[i]
		for _, v := range values[i : i+k] {
			if math.IsNaN(v) {
				m = math.NaN()
				break
			}
			if v < m {
				m = v
			}
		}
		out[i] = m
	}
	return out
}

func TestSlidingMinimumLengthLaw(t *testing.T) {
	series := [][]float64{
		testutil.DeterministicNoise(1, 1, 50),
		testutil.DeterministicSine(3, 100, 1, 200),
		{5, 4, 3, 2, 1, 0},
		{0, 1, 2, 3, 4, 5},
		{2, 2, 2, 1, 1, 3, 3},
	}

	for si, s := range series {
		for _, k := range []int{1, 2, 3, len(s) / 2, len(s) - 1} {
			got, err := SlidingMinimum(s, k)
			if err != nil {
				t.Fatalf("series %d k=%d: error = %v", si, k, err)
			}
			if len(got) != len(s)-k {
				t.Fatalf("series %d k=%d: len = %d, want %d", si, k, len(got), len(s)-k)
			}
			testutil.RequireSliceNearlyEqual(t, got, bruteMinimum(s, k), 0)
		}
	}
}

func TestSlidingMinimumExample(t *testing.T) {
	got, err := SlidingMinimum([]float64{4, 2, 7, 1, 9, 3, 8}, 3)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	want := []float64{2, 1, 1, 1}
	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestSlidingMinimumNaN(t *testing.T) {
	s := []float64{3, math.NaN(), 2, 5, 1, 4}
	got, err := SlidingMinimum(s, 2)
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	want := bruteMinimum(s, 2)
	for i := range want {
		if math.IsNaN(want[i]) != math.IsNaN(got[i]) || (!math.IsNaN(want[i]) && want[i] != got[i]) {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSlidingMinimumErrors(t *testing.T) {
	s := []float64{1, 2, 3}
	for _, k := range []int{-1, 0, 3, 4} {
		if _, err := SlidingMinimum(s, k); !errors.Is(err, ErrInsufficientInput) {
			t.Fatalf("k=%d: error = %v, want ErrInsufficientInput", k, err)
		}
	}
	if _, err := SlidingMinimum(nil, 1); !errors.Is(err, ErrInsufficientInput) {
		t.Fatalf("empty series error = %v, want ErrInsufficientInput", err)
	}
}

func TestMinimumWindowLength(t *testing.T) {
	tests := []struct {
		seconds, rate float64
		want          int
	}{
		{seconds: 2, rate: 61, want: 122},
		{seconds: 2, rate: 62.5, want: 125},
		{seconds: 0.5, rate: 61, want: 30},
		{seconds: 1.99, rate: 1, want: 1},
	}
	for _, tt := range tests {
		if got := MinimumWindowLength(tt.seconds, tt.rate); got != tt.want {
			t.Fatalf("MinimumWindowLength(%v, %v) = %d, want %d", tt.seconds, tt.rate, got, tt.want)
		}
	}
}
