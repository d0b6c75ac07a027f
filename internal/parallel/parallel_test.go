package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestBlocksCoversRange(t *testing.T) {
	for _, tc := range []struct{ n, workers int }{
		{1, 4}, {7, 3}, {100, 8}, {64, 64}, {10, 0}, {5, 1},
	} {
		hits := make([]int32, tc.n)
		err := Blocks(context.Background(), tc.n, tc.workers, func(_ context.Context, lo, hi int) error {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		if err != nil {
			t.Fatalf("n=%d workers=%d: error = %v", tc.n, tc.workers, err)
		}
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d workers=%d: index %d visited %d times", tc.n, tc.workers, i, h)
			}
		}
	}
}

func TestBlocksEmpty(t *testing.T) {
	called := false
	err := Blocks(context.Background(), 0, 4, func(context.Context, int, int) error {
		called = true
		return nil
	})
	if err != nil || called {
		t.Fatalf("err=%v called=%v, want nil/false", err, called)
	}
}

func TestBlocksError(t *testing.T) {
	boom := errors.New("boom")
	err := Blocks(context.Background(), 16, 4, func(_ context.Context, lo, _ int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
}

func TestBlocksCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Blocks(ctx, 8, 1, func(context.Context, int, int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestWorkers(t *testing.T) {
	if Workers(3) != 3 {
		t.Fatal("Workers(3) != 3")
	}
	if Workers(0) < 1 {
		t.Fatal("Workers(0) < 1")
	}
}
