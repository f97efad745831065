// SPDX-License-Identifier: MIT
// Package: generator
//
// options.go — functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on nil inputs; empty alphabets
//     are reported by the generators as ErrEmptyAlphabet.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import "math/rand"

// Option customizes a generator call.
type Option func(*genConfig)

// WithAlphabet sets the symbols drawn from. Repeated symbols weight the draw.
func WithAlphabet(alphabet string) Option {
	return func(c *genConfig) { c.alphabet = alphabet }
}

// WithRand provides an explicit RNG, shared across calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
