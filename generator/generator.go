// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"
	"math/rand"
)

// Sequence returns length symbols drawn uniformly from the configured
// alphabet.
func Sequence(length int, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(length); err != nil {
		return nil, err
	}

	return draw(cfg, cfg.source(), length), nil
}

// Pair returns two independent sequences of the same length drawn from one
// random stream, the way test inputs A and B are produced.
func Pair(length int, opts ...Option) (a, b []byte, err error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(length); err != nil {
		return nil, nil, err
	}

	rng := cfg.source()

	return draw(cfg, rng, length), draw(cfg, rng, length), nil
}

func (c genConfig) validate(length int) error {
	if length < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeLength, length)
	}
	if c.alphabet == "" {
		return ErrEmptyAlphabet
	}

	return nil
}

func draw(cfg genConfig, rng *rand.Rand, length int) []byte {
	out := make([]byte, length)
	for i := range out {
		out[i] = cfg.alphabet[rng.Intn(len(cfg.alphabet))]
	}

	return out
}
