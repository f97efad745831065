package levenshtein

import (
	"errors"
	"fmt"
)

// Levenshtein — edit distance
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) table D.
//  2. Initialize:
//     D[i][0] = i for i=0..n
//     D[0][j] = j for j=0..m
//  3. For i = 1..n, j = 1..m:
//     cost    = 0 if a[i-1] == b[j-1] else 1
//     D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+cost)
//  4. distance = D[n][m].
//  5. If ReturnScript, backtrack from (n,m) to (0,0) preferring the
//     diagonal predecessor, then deletion, then insertion.
//
// Errors:
//   - ErrScriptNeedsMatrix — ReturnScript=true with TwoRows mode.
//   - ErrBadMode           — unknown MemoryMode.
var (
	// ErrScriptNeedsMatrix indicates that the edit script requires FullMatrix mode.
	ErrScriptNeedsMatrix = errors.New("levenshtein: ReturnScript requires MemoryMode=FullMatrix")

	// ErrBadMode indicates an unknown MemoryMode value.
	ErrBadMode = errors.New("levenshtein: unknown memory mode")
)

// Distance computes the edit distance between a and b.
// Returns (distance, script, error); script is nil unless opts.ReturnScript.
//
// A nil opts means DefaultOptions().
//
// Example:
//
//	opts := Options{MemoryMode: FullMatrix, ReturnScript: true}
//	dist, script, err := Distance([]byte("kitten"), []byte("sitting"), &opts)
func Distance(a, b []byte, opts *Options) (distance int, script []Op, err error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	switch o.MemoryMode {
	case FullMatrix:
		dp := fill(a, b)
		distance = dp[len(a)][len(b)]
		if o.ReturnScript {
			script = backtrack(a, b, dp)
		}

		return distance, script, nil
	case TwoRows:
		if o.ReturnScript {
			return 0, nil, ErrScriptNeedsMatrix
		}

		return twoRows(a, b), nil, nil
	default:
		return 0, nil, fmt.Errorf("%w: %d", ErrBadMode, int(o.MemoryMode))
	}
}

// fill builds the full DP table.
func fill(a, b []byte) [][]int {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
		dp[i][0] = i
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost(a[i-1], b[j-1]))
		}
	}

	return dp
}

// twoRows computes the distance with two rows sized by the shorter input.
func twoRows(a, b []byte) int {
	if len(b) > len(a) {
		a, b = b, a
	}
	m := len(b)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= m; j++ {
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost(a[i-1], b[j-1]))
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks the table from (n,m) back to (0,0) and returns the script
// in forward order.
func backtrack(a, b []byte, dp [][]int) []Op {
	i, j := len(a), len(b)
	script := make([]Op, 0, max(i, j))
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+cost(a[i-1], b[j-1]):
			kind := Substitute
			if a[i-1] == b[j-1] {
				kind = Match
			}
			script = append(script, Op{Kind: kind, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+1:
			script = append(script, Op{Kind: Delete, I: i - 1, J: -1})
			i--
		default:
			script = append(script, Op{Kind: Insert, I: -1, J: j - 1})
			j--
		}
	}

	// reverse in-place
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return script
}

// Apply replays script against a and returns the edited sequence. Applying
// the script returned for (a, b) yields b.
func Apply(a, b []byte, script []Op) []byte {
	out := make([]byte, 0, len(b))
	for _, op := range script {
		switch op.Kind {
		case Match:
			out = append(out, a[op.I])
		case Substitute, Insert:
			out = append(out, b[op.J])
		case Delete:
		}
	}

	return out
}

func cost(x, y byte) int {
	if x == y {
		return 0
	}

	return 1
}

// min3 returns the minimum of three ints.
func min3(x, y, z int) int {
	if x < y {
		if x < z {
			return x
		}

		return z
	}
	if y < z {
		return y
	}

	return z
}
