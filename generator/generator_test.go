// SPDX-License-Identifier: MIT

package generator_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/BeBeatrice/Parallel-Computing/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSequence_DefaultAlphabet checks length and that every symbol is a nucleotide.
func TestSequence_DefaultAlphabet(t *testing.T) {
	t.Parallel()

	seq, err := generator.Sequence(500, generator.WithSeed(1))
	require.NoError(t, err)
	require.Len(t, seq, 500)
	for _, c := range seq {
		assert.True(t, strings.IndexByte(generator.DefaultAlphabet, c) >= 0, "unexpected symbol %q", c)
	}
}

// TestSequence_Seeded verifies WithSeed makes draws reproducible.
func TestSequence_Seeded(t *testing.T) {
	t.Parallel()

	a, err := generator.Sequence(64, generator.WithSeed(42))
	require.NoError(t, err)
	b, err := generator.Sequence(64, generator.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must give the same sequence")
}

// TestSequence_SharedRand verifies WithRand continues one stream across calls.
func TestSequence_SharedRand(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(9))
	first, err := generator.Sequence(32, generator.WithRand(rng))
	require.NoError(t, err)
	second, err := generator.Sequence(32, generator.WithRand(rng))
	require.NoError(t, err)

	whole, err := generator.Sequence(64, generator.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, whole, append(first, second...))
}

// TestSequence_CustomAlphabet uses a binary alphabet and checks every symbol appears.
func TestSequence_CustomAlphabet(t *testing.T) {
	t.Parallel()

	seq, err := generator.Sequence(200, generator.WithAlphabet("01"), generator.WithSeed(3))
	require.NoError(t, err)
	assert.Empty(t, strings.Trim(string(seq), "01"))
	assert.True(t, bytes.ContainsRune(seq, '0'))
	assert.True(t, bytes.ContainsRune(seq, '1'))
}

// TestSequence_Errors covers the validation sentinels.
func TestSequence_Errors(t *testing.T) {
	t.Parallel()

	_, err := generator.Sequence(-1)
	assert.ErrorIs(t, err, generator.ErrNegativeLength)

	_, err = generator.Sequence(3, generator.WithAlphabet(""))
	assert.ErrorIs(t, err, generator.ErrEmptyAlphabet)

	_, _, err = generator.Pair(-5)
	assert.ErrorIs(t, err, generator.ErrNegativeLength)
}

// TestSequence_Zero returns an empty, non-nil sequence.
func TestSequence_Zero(t *testing.T) {
	t.Parallel()

	seq, err := generator.Sequence(0)
	require.NoError(t, err)
	assert.NotNil(t, seq)
	assert.Empty(t, seq)
}

// TestPair draws two sequences from one stream.
func TestPair(t *testing.T) {
	t.Parallel()

	a, b, err := generator.Pair(128, generator.WithSeed(5))
	require.NoError(t, err)
	assert.Len(t, a, 128)
	assert.Len(t, b, 128)
	assert.NotEqual(t, a, b, "independent draws of 128 symbols should differ")

	a2, b2, err := generator.Pair(128, generator.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, a, a2)
	assert.Equal(t, b, b2)
}

// TestWithRandNil verifies the option constructor panics on nil.
func TestWithRandNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { generator.WithRand(nil) })
}
