// SPDX-License-Identifier: MIT

package wavefront

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of a whole group run.
type Result struct {
	Distance int           // edit distance, agreed on by every worker
	Workers  int           // group size
	Elapsed  time.Duration // wall-clock time of the sweep
}

// RunLocal runs a group of workers as goroutines over a LocalGroup and
// returns the distance they agree on. The first worker to fail aborts the
// group, so the remaining workers return promptly and RunLocal reports the
// first failure.
func RunLocal(ctx context.Context, a, b []byte, workers int, opts ...Option) (Result, error) {
	group, err := NewLocalGroup(workers)
	if err != nil {
		return Result{}, err
	}

	distances := make([]int, workers)
	g, gctx := errgroup.WithContext(ctx)
	start := time.Now()
	for rank := 0; rank < workers; rank++ {
		g.Go(func() error {
			d, err := Compute(gctx, a, b, group.Member(rank), opts...)
			if err != nil {
				group.Abort(err)

				return fmt.Errorf("worker %d: %w", rank, err)
			}
			distances[rank] = d

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	elapsed := time.Since(start)

	for rank, d := range distances {
		if d != distances[0] {
			return Result{}, fmt.Errorf("%w: worker 0 got %d, worker %d got %d", ErrDivergence, distances[0], rank, d)
		}
	}

	return Result{Distance: distances[0], Workers: workers, Elapsed: elapsed}, nil
}
