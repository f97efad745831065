// SPDX-License-Identifier: MIT
// Package wavefront_test contains shared fixtures.
//
// Purpose:
//   • Deterministic random input pairs drawn through package generator.
//   • Reference distances from package levenshtein.
//   • A group runner over caller-supplied communicators.
//   • Communicator wrappers that stall, corrupt or record traffic.

package wavefront_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/BeBeatrice/Parallel-Computing/generator"
	"github.com/BeBeatrice/Parallel-Computing/levenshtein"
	"github.com/BeBeatrice/Parallel-Computing/wavefront"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// pair is one input case.
type pair struct {
	a, b []byte
}

// reference returns the sequential distance of a and b.
func reference(t testing.TB, a, b []byte) int {
	t.Helper()

	d, _, err := levenshtein.Distance(a, b, nil)
	require.NoError(t, err)

	return d
}

// randomPairs returns count pairs with lengths in [0, maxLen] over alphabet,
// drawn from one seeded stream.
func randomPairs(t testing.TB, seed int64, count, maxLen int, alphabet string) []pair {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	out := make([]pair, 0, count)
	for k := 0; k < count; k++ {
		a, err := generator.Sequence(rng.Intn(maxLen+1), generator.WithRand(rng), generator.WithAlphabet(alphabet))
		require.NoError(t, err)
		b, err := generator.Sequence(rng.Intn(maxLen+1), generator.WithRand(rng), generator.WithAlphabet(alphabet))
		require.NoError(t, err)
		out = append(out, pair{a: a, b: b})
	}

	return out
}

// runGroup runs Compute on every communicator of group concurrently, aborting
// the group on the first failure, and returns each rank's distance and error.
func runGroup(ctx context.Context, group *wavefront.LocalGroup, comms []wavefront.Communicator, a, b []byte, opts ...wavefront.Option) ([]int, []error) {
	distances := make([]int, len(comms))
	errs := make([]error, len(comms))

	var g errgroup.Group
	for rank, comm := range comms {
		g.Go(func() error {
			distances[rank], errs[rank] = wavefront.Compute(ctx, a, b, comm, opts...)
			if errs[rank] != nil {
				group.Abort(errs[rank])
			}

			return nil
		})
	}
	_ = g.Wait()

	return distances, errs
}

// members returns every Communicator of group in rank order.
func members(group *wavefront.LocalGroup) []wavefront.Communicator {
	out := make([]wavefront.Communicator, group.Size())
	for r := range out {
		out[r] = group.Member(r)
	}

	return out
}

// stallComm never completes a collective until its context ends.
type stallComm struct {
	wavefront.Communicator
}

func (s stallComm) Allgather(ctx context.Context, _ int, _ []int) ([][]int, error) {
	<-ctx.Done()

	return nil, ctx.Err()
}

func (s stallComm) Barrier(ctx context.Context, _ int) error {
	<-ctx.Done()

	return ctx.Err()
}

// skewComm adds delta to every pipeline value it sends.
type skewComm struct {
	wavefront.Communicator
	delta int
}

func (s skewComm) Send(ctx context.Context, to, tag, value int) error {
	return s.Communicator.Send(ctx, to, tag, value+s.delta)
}

// fixedComm reports an arbitrary identity without a transport behind it.
type fixedComm struct {
	wavefront.Communicator
	rank, size int
}

func (f fixedComm) Rank() int { return f.rank }
func (f fixedComm) Size() int { return f.size }

// traceComm records the order of pipeline operations per tag. Each instance
// belongs to a single rank.
type traceComm struct {
	wavefront.Communicator
	ops map[int][]string
}

func newTraceComm(c wavefront.Communicator) *traceComm {
	return &traceComm{Communicator: c, ops: make(map[int][]string)}
}

func (c *traceComm) Send(ctx context.Context, to, tag, value int) error {
	c.ops[tag] = append(c.ops[tag], "send")

	return c.Communicator.Send(ctx, to, tag, value)
}

func (c *traceComm) Recv(ctx context.Context, from, tag int) (int, error) {
	c.ops[tag] = append(c.ops[tag], "recv")

	return c.Communicator.Recv(ctx, from, tag)
}
