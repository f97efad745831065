// SPDX-License-Identifier: MIT
// Package: wavefront
//
// partition.go — diagonal bands and their split across workers.
//
// Contract:
//   • Ranges are half-open [Start, End).
//   • Partition is deterministic and computed independently by every worker
//     from public inputs; both ends of a pipeline hand-off agree on who owns
//     which row without negotiating it.
//   • Ranges of one band tile it exactly: no gaps, no overlaps, sizes differ
//     by at most one, lower ranks absorb the remainder.

package wavefront

import "fmt"

// Range is a half-open interval of table rows.
type Range struct {
	Start int // first row (inclusive)
	End   int // one past the last row
}

// Len returns the number of rows in r (0 when empty).
func (r Range) Len() int {
	if r.End <= r.Start {
		return 0
	}

	return r.End - r.Start
}

// Empty reports whether r holds no rows.
func (r Range) Empty() bool { return r.Len() == 0 }

// Last returns the last row of a non-empty range.
func (r Range) Last() int { return r.End - 1 }

// Shift moves r by k rows.
func (r Range) Shift(k int) Range { return Range{Start: r.Start + k, End: r.End + k} }

// String renders r as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End) }

// Band returns the rows of anti-diagonal d that lie inside the interior of an
// (n+1)x(m+1) table: [max(1, d-m), min(n, d-1)]. Row 0 and column 0 are
// boundary cells and never part of a band. The result is empty near the
// first and last diagonals and whenever either sequence is empty.
func Band(d, n, m int) Range {
	start := max(1, d-m)
	end := min(n, d-1) + 1
	if end < start {
		end = start
	}

	return Range{Start: start, End: end}
}

// Partition returns the slice of [0, length) owned by worker rank in a group
// of workers. With base = length/workers and rem = length%workers, ranks
// below rem own base+1 rows and the rest own base; ranges follow rank order.
// Invalid arguments yield an empty range.
func Partition(length, workers, rank int) Range {
	if length <= 0 || workers <= 0 || rank < 0 || rank >= workers {
		return Range{}
	}

	base, rem := length/workers, length%workers
	start := rank*base + min(rank, rem)
	size := base
	if rank < rem {
		size++
	}

	return Range{Start: start, End: start + size}
}
