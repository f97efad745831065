package levenshtein_test

import (
	"testing"

	"github.com/BeBeatrice/Parallel-Computing/levenshtein"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// knownPairs are hand-checked distances.
var knownPairs = []struct {
	a, b string
	want int
}{
	{"", "", 0},
	{"", "abc", 3},
	{"abc", "", 3},
	{"abc", "abc", 0},
	{"kitten", "sitting", 3},
	{"flaw", "lawn", 2},
	{"ACGT", "TGCA", 4},
	{"intention", "execution", 5},
	{"CTCT", "GT", 3},
}

// TestDistance_Known checks both memory modes against hand-checked values.
func TestDistance_Known(t *testing.T) {
	for _, tc := range knownPairs {
		for _, mode := range []levenshtein.MemoryMode{levenshtein.FullMatrix, levenshtein.TwoRows} {
			opts := levenshtein.Options{MemoryMode: mode}
			dist, script, err := levenshtein.Distance([]byte(tc.a), []byte(tc.b), &opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, dist, "Distance(%q, %q) mode=%d", tc.a, tc.b, mode)
			assert.Nil(t, script, "no script unless requested")
		}
	}
}

// TestDistance_NilOptions verifies nil options fall back to DefaultOptions.
func TestDistance_NilOptions(t *testing.T) {
	dist, script, err := levenshtein.Distance([]byte("kitten"), []byte("sitting"), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, dist)
	assert.Nil(t, script)
}

// TestDistance_ScriptNeedsMatrix ensures ReturnScript with TwoRows errors.
func TestDistance_ScriptNeedsMatrix(t *testing.T) {
	opts := levenshtein.DefaultOptions()
	opts.ReturnScript = true

	_, _, err := levenshtein.Distance([]byte("a"), []byte("b"), &opts)
	assert.ErrorIs(t, err, levenshtein.ErrScriptNeedsMatrix)
}

// TestDistance_BadMode ensures unknown memory modes are rejected.
func TestDistance_BadMode(t *testing.T) {
	opts := levenshtein.Options{MemoryMode: levenshtein.MemoryMode(42)}

	_, _, err := levenshtein.Distance([]byte("a"), []byte("b"), &opts)
	assert.ErrorIs(t, err, levenshtein.ErrBadMode)
}

// TestDistance_Script verifies that the script costs exactly the distance
// and replays a into b.
func TestDistance_Script(t *testing.T) {
	opts := levenshtein.Options{MemoryMode: levenshtein.FullMatrix, ReturnScript: true}
	for _, tc := range knownPairs {
		a, b := []byte(tc.a), []byte(tc.b)
		dist, script, err := levenshtein.Distance(a, b, &opts)
		require.NoError(t, err)

		total := 0
		for _, op := range script {
			total += op.Cost()
		}
		assert.Equal(t, dist, total, "script cost for (%q, %q)", tc.a, tc.b)
		assert.Equal(t, tc.b, string(levenshtein.Apply(a, b, script)), "replay of (%q, %q)", tc.a, tc.b)
	}
}

// TestDistance_ScriptShape checks the exact script for a small pair.
func TestDistance_ScriptShape(t *testing.T) {
	opts := levenshtein.Options{MemoryMode: levenshtein.FullMatrix, ReturnScript: true}

	_, script, err := levenshtein.Distance([]byte("ab"), []byte("b"), &opts)
	require.NoError(t, err)
	assert.Equal(t, []levenshtein.Op{
		{Kind: levenshtein.Delete, I: 0, J: -1},
		{Kind: levenshtein.Match, I: 1, J: 0},
	}, script)
}

// TestOpKind_String covers the names used in CLI output.
func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "match", levenshtein.Match.String())
	assert.Equal(t, "substitute", levenshtein.Substitute.String())
	assert.Equal(t, "insert", levenshtein.Insert.String())
	assert.Equal(t, "delete", levenshtein.Delete.String())
	assert.Equal(t, "OpKind(9)", levenshtein.OpKind(9).String())
}
