// SPDX-License-Identifier: MIT

package wavefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Compute returns the edit distance of a and b as one member of a group.
//
// Every member must call Compute with byte-identical a and b and its own
// Communicator; Compute does not verify that. For each diagonal d = 1..n+m
// the member
//
//  1. derives the band and its own rows with Partition,
//  2. evaluates its last row first and hands it to rank+1 (tag d), unless
//     it is the last member with rows,
//  3. waits for the hand-off of rank-1 before evaluating the rest of its rows;
//     a member owning a single row waits before evaluating it, so its first
//     cell is never computed ahead of the hand-off,
//  4. merges every member's chunk with Allgather (Barrier on an empty band),
//  5. rotates the history.
//
// Each diagonal therefore ends with exactly one collective on every member,
// which keeps the group in lock-step. With Size() == 1 no message is
// exchanged and the sweep is purely sequential.
//
// A step that does not finish within the step timeout fails with
// ErrPeerTimeout; callers running a group should then abort it so that
// the other members return as well (RunLocal does).
func Compute(ctx context.Context, a, b []byte, comm Communicator, opts ...Option) (distance int, err error) {
	if comm == nil {
		return 0, ErrNilCommunicator
	}
	rank, size := comm.Rank(), comm.Size()
	if size < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidWorkers, size)
	}
	if rank < 0 || rank >= size {
		return 0, fmt.Errorf("%w: %d of %d", ErrInvalidRank, rank, size)
	}

	cfg := newConfig(opts...)
	n, m := len(a), len(b)

	ctx, span := getTracer().Start(ctx, "wavefront.Compute",
		trace.WithAttributes(
			attribute.Int("rank", rank),
			attribute.Int("size", size),
			attribute.Int("n", n),
			attribute.Int("m", m),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "compute failed")
		}
		span.End()
	}()

	log := cfg.logger.With("rank", rank, "size", size)
	log.Debug("wavefront: sweep started", "n", n, "m", m, "diagonals", n+m)
	start := time.Now()

	w := &worker{a: a, b: b, n: n, m: m, rank: rank, size: size, comm: comm, cfg: cfg}
	hist := NewHistory(n)
	for d := 1; d <= n+m; d++ {
		if err = ctx.Err(); err == nil {
			hist, err = w.step(ctx, d, hist)
		}
		if err != nil {
			log.Error("wavefront: sweep failed", "diagonal", d, "error", err)

			return 0, fmt.Errorf("diagonal %d: %w", d, err)
		}
	}

	distance = hist.Result()
	log.Debug("wavefront: sweep finished", "distance", distance, "elapsed", time.Since(start))

	return distance, nil
}

// worker carries the per-member constants of one sweep.
type worker struct {
	a, b       []byte
	n, m       int
	rank, size int
	comm       Communicator
	cfg        config
}

// step advances h past diagonal d.
func (w *worker) step(ctx context.Context, d int, h History) (History, error) {
	band := Band(d, w.n, w.m)
	if band.Empty() {
		if err := w.bounded(ctx, "barrier", func(ctx context.Context) error {
			return w.comm.Barrier(ctx, d)
		}); err != nil {
			return h, err
		}
		w.cfg.observeDiagonal("empty", 0)

		return h.Rotate(d, w.m, band, nil), nil
	}

	length := band.Len()
	own := Partition(length, w.size, w.rank).Shift(band.Start)

	var chunk []int
	if !own.Empty() {
		var err error
		if chunk, err = w.evaluate(ctx, d, own, length, h); err != nil {
			return h, err
		}
	}

	var chunks [][]int
	if err := w.bounded(ctx, "allgather", func(ctx context.Context) error {
		var err error
		chunks, err = w.comm.Allgather(ctx, d, chunk)

		return err
	}); err != nil {
		return h, err
	}

	values, err := reconcile(chunks, length, w.size)
	if err != nil {
		return h, err
	}
	w.cfg.observeDiagonal("band", len(chunk))

	return h.Rotate(d, w.m, band, values), nil
}

// evaluate fills the member's rows of diagonal d, exchanging the pipeline
// hand-off on the way.
func (w *worker) evaluate(ctx context.Context, d int, own Range, length int, h History) ([]int, error) {
	chunk := make([]int, own.Len())
	last := own.Last()

	// With a single row the last row is also the first one.
	single := own.Len() == 1
	if single {
		if err := w.receive(ctx, d, own, h); err != nil {
			return nil, err
		}
	}

	chunk[len(chunk)-1] = Evaluate(w.a, w.b, last, d-last, h.Prev[last-1], h.Prev[last], h.Prev2[last-1])

	if w.rank+1 < w.size && !Partition(length, w.size, w.rank+1).Empty() {
		if err := w.bounded(ctx, "send", func(ctx context.Context) error {
			return w.comm.Send(ctx, w.rank+1, d, chunk[len(chunk)-1])
		}); err != nil {
			return nil, err
		}
	}

	if !single {
		if err := w.receive(ctx, d, own, h); err != nil {
			return nil, err
		}
	}

	rest := Range{Start: own.Start, End: last}
	fillRowsParallel(chunk[:len(chunk)-1], w.a, w.b, d, rest, h, w.cfg.threads)

	return chunk, nil
}

// receive waits for the hand-off of rank-1 on diagonal d and checks it
// against the history. Rank 0 has no predecessor.
func (w *worker) receive(ctx context.Context, d int, own Range, h History) error {
	if w.rank == 0 {
		return nil
	}

	var handoff int
	if err := w.bounded(ctx, "recv", func(ctx context.Context) error {
		var err error
		handoff, err = w.comm.Recv(ctx, w.rank-1, d)

		return err
	}); err != nil {
		return err
	}

	return checkHandoff(handoff, h, own.Start)
}

// bounded runs one communication step under the step timeout and converts a
// missed deadline into ErrPeerTimeout. Cancellation of ctx itself is
// returned unchanged.
func (w *worker) bounded(ctx context.Context, op string, fn func(context.Context) error) error {
	stepCtx := ctx
	if w.cfg.stepTimeout > 0 {
		var cancel context.CancelFunc
		stepCtx, cancel = context.WithTimeout(ctx, w.cfg.stepTimeout)
		defer cancel()
	}

	start := time.Now()
	err := fn(stepCtx)
	w.cfg.observeWait(op, time.Since(start))

	if err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s: %w", ErrPeerTimeout, op, w.cfg.stepTimeout, err)
	}

	return err
}

// checkHandoff verifies the value received from rank-1. It is the preceding
// member's last row, D[row-1][col+1], while the local history holds
// D[row-1][col] in Prev[row-1]; two horizontally adjacent cells of an edit
// distance table never differ by more than one.
func checkHandoff(handoff int, h History, row int) error {
	up := h.Prev[row-1]
	if diff := handoff - up; diff > 1 || diff < -1 {
		return fmt.Errorf("%w: row %d received %d next to %d", ErrBoundaryMismatch, row-1, handoff, up)
	}

	return nil
}

// reconcile concatenates the chunks in rank order and checks that they tile
// a band of the given length exactly as Partition prescribes.
func reconcile(chunks [][]int, length, size int) ([]int, error) {
	if len(chunks) != size {
		return nil, fmt.Errorf("%w: %d chunks for %d workers", ErrReconcile, len(chunks), size)
	}

	out := make([]int, 0, length)
	for r, c := range chunks {
		if want := Partition(length, size, r).Len(); len(c) != want {
			return nil, fmt.Errorf("%w: rank %d sent %d values, want %d", ErrReconcile, r, len(c), want)
		}
		out = append(out, c...)
	}

	return out, nil
}
