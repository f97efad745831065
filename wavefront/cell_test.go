// SPDX-License-Identifier: MIT

package wavefront_test

import (
	"testing"

	"github.com/BeBeatrice/Parallel-Computing/wavefront"
	"github.com/stretchr/testify/assert"
)

// TestCost checks match and mismatch costs.
func TestCost(t *testing.T) {
	assert.Equal(t, 0, wavefront.Cost('A', 'A'))
	assert.Equal(t, 1, wavefront.Cost('A', 'C'))
}

// TestEvaluate_Boundary verifies first-row and first-column cells take their
// boundary value regardless of the dependency arguments.
func TestEvaluate_Boundary(t *testing.T) {
	assert.Equal(t, 0, wavefront.Evaluate(nil, nil, 0, 0, 9, 9, 9))
	assert.Equal(t, 5, wavefront.Evaluate(nil, []byte("abcde"), 0, 5, 9, 9, 9), "D[0][j] = j")
	assert.Equal(t, 3, wavefront.Evaluate([]byte("abc"), nil, 3, 0, 9, 9, 9), "D[i][0] = i")
}

// TestEvaluate_Recurrence covers each branch of the minimum.
func TestEvaluate_Recurrence(t *testing.T) {
	a, b := []byte("ab"), []byte("xb")

	tests := []struct {
		name               string
		row, col           int
		up, left, diag     int
		want               int
	}{
		{name: "match takes diagonal", row: 2, col: 2, up: 1, left: 1, diag: 1, want: 1},
		{name: "substitution", row: 1, col: 1, up: 1, left: 1, diag: 0, want: 1},
		{name: "deletion cheapest", row: 1, col: 1, up: 0, left: 4, diag: 4, want: 1},
		{name: "insertion cheapest", row: 1, col: 1, up: 4, left: 0, diag: 4, want: 1},
		{name: "all equal", row: 1, col: 2, up: 2, left: 2, diag: 2, want: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := wavefront.Evaluate(a, b, tc.row, tc.col, tc.up, tc.left, tc.diag)
			assert.Equal(t, tc.want, got)
		})
	}
}
