// SPDX-License-Identifier: MIT

// Package generator manufactures random byte sequences for exercising the
// edit-distance engines.
//
// Every symbol is drawn uniformly from a fixed alphabet ("ACGT" unless
// WithAlphabet says otherwise). Randomness is explicit: use WithSeed for
// reproducible fixtures, WithRand to share one stream across calls, or
// neither for a time-seeded stream.
//
//	a, err := generator.Sequence(1000, generator.WithSeed(7))
//	a, b, err := generator.Pair(1000, generator.WithAlphabet("01"))
package generator
