// SPDX-License-Identifier: MIT

package wavefront

// Cost returns the substitution cost of aligning x with y: 0 on a match,
// 1 otherwise.
func Cost(x, y byte) int {
	if x == y {
		return 0
	}

	return 1
}

// Evaluate applies the edit-distance recurrence to cell (row, col) of the
// table whose rows follow a and whose columns follow b:
//
//	min(up+1, left+1, diag+Cost(a[row-1], b[col-1]))
//
// up is D[row-1][col], left is D[row][col-1] and diag is D[row-1][col-1].
// Cells of the first row or column have no characters to compare; their value
// is the boundary value row+col (D[0][j] = j, D[i][0] = i) and the dependency
// arguments are ignored. Evaluate is pure and total.
func Evaluate(a, b []byte, row, col, up, left, diag int) int {
	if row == 0 || col == 0 {
		return row + col
	}

	best := diag + Cost(a[row-1], b[col-1])
	if v := up + 1; v < best {
		best = v
	}
	if v := left + 1; v < best {
		best = v
	}

	return best
}
