// SPDX-License-Identifier: MIT

package wavefront

import "golang.org/x/sync/errgroup"

// ComputeChunk evaluates rows of diagonal d against the history and returns
// their values in row order. Every dependency of a cell on diagonal d lives
// in h (up = Prev[i-1], left = Prev[i], diag = Prev2[i-1]), so the call never
// communicates: a test can evaluate each worker's chunk of one diagonal in
// turn and compare the concatenation with a single-worker evaluation.
//
// rows must lie inside Band(d, len(a), len(b)).
func ComputeChunk(a, b []byte, d int, rows Range, h History) []int {
	out := make([]int, rows.Len())
	fillRows(out, a, b, d, rows, h)

	return out
}

// fillRows writes the values of rows into out (len(out) == rows.Len()).
func fillRows(out []int, a, b []byte, d int, rows Range, h History) {
	for k := range out {
		i := rows.Start + k
		out[k] = Evaluate(a, b, i, d-i, h.Prev[i-1], h.Prev[i], h.Prev2[i-1])
	}
}

// fillRowsParallel splits rows with Partition and fills the pieces
// concurrently. The pieces write disjoint parts of out and only read h.
func fillRowsParallel(out []int, a, b []byte, d int, rows Range, h History, threads int) {
	if threads <= 1 || rows.Len() < 2*threads {
		fillRows(out, a, b, d, rows, h)

		return
	}

	var g errgroup.Group
	for t := 0; t < threads; t++ {
		part := Partition(rows.Len(), threads, t)
		if part.Empty() {
			continue
		}
		g.Go(func() error {
			fillRows(out[part.Start:part.End], a, b, d, part.Shift(rows.Start), h)

			return nil
		})
	}
	_ = g.Wait()
}
