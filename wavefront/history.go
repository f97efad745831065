// SPDX-License-Identifier: MIT

package wavefront

// Diagonal holds one completed anti-diagonal indexed by row: entry i is the
// table value of the cell on that diagonal at row i. Its length is n+1.
// Slot 0 carries the first-row boundary value D[0][d]; rows outside the
// diagonal's band keep the first-column boundary values D[i][0] = i.
type Diagonal []int

// Clone returns an independent copy of d.
func (d Diagonal) Clone() Diagonal {
	out := make(Diagonal, len(d))
	copy(out, d)

	return out
}

// History is the rolling pair of diagonals every worker replicates:
// Prev is diagonal d-1 and Prev2 is diagonal d-2 while diagonal d is being
// computed. Both are read-only snapshots during a step and are replaced
// wholesale by Rotate.
type History struct {
	Prev  Diagonal
	Prev2 Diagonal
}

// NewHistory seeds the history for an A sequence of length n: both vectors
// start as the first column, D[i][0] = i, with D[0][0] = 0 in slot 0.
func NewHistory(n int) History {
	prev := make(Diagonal, n+1)
	for i := range prev {
		prev[i] = i
	}

	return History{Prev: prev, Prev2: prev.Clone()}
}

// Rotate returns the history for diagonal d+1 once diagonal d has been
// reconciled: Prev2 becomes the old Prev, and the new Prev is the old Prev
// with the band rows replaced by values. While d <= m the boundary slot is
// set to d, the value of the empty-prefix cell D[0][d]. Rotate never
// modifies h; values must hold band.Len() entries.
func (h History) Rotate(d, m int, band Range, values []int) History {
	next := h.Prev.Clone()
	if !band.Empty() {
		copy(next[band.Start:band.End], values)
	}
	if d <= m {
		next[0] = d
	}

	return History{Prev: next, Prev2: h.Prev}
}

// Result returns D[n][m] once every diagonal has been applied.
func (h History) Result() int { return h.Prev[len(h.Prev)-1] }
