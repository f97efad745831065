// SPDX-License-Identifier: MIT
// Package: generator
//
// config.go — internal configuration and defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • newConfig applies options in order (later overrides earlier).
//
// Defaults:
//   • alphabet = "ACGT"
//   • rng      = nil (resolved to a time-seeded source per call)

package generator

import (
	"math/rand"
	"time"
)

// DefaultAlphabet is the 4-symbol nucleotide alphabet.
const DefaultAlphabet = "ACGT"

// genConfig aggregates all knobs used by the generators. It is passed by
// value.
type genConfig struct {
	alphabet string
	rng      *rand.Rand
}

func newConfig(opts ...Option) genConfig {
	cfg := genConfig{alphabet: DefaultAlphabet}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// source returns cfg.rng if present (shared stream), else a fresh
// time-seeded rand.
func (c genConfig) source() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
