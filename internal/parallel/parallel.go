// Package parallel splits index ranges across a bounded set of goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Workers resolves a requested worker count: n <= 0 means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Blocks partitions [0, n) into at most workers contiguous ranges and calls fn
// once per range, concurrently. Ranges are disjoint, so fn may write to
// index-addressed output without synchronization.
//
// The first error cancels the context passed to the remaining calls and is
// returned.
func Blocks(ctx context.Context, n, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}

	workers = Workers(workers)
	if workers > n {
		workers = n
	}

	if workers == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(ctx, 0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	size := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, lo, hi)
		})
	}

	return g.Wait()
}
