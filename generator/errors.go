// SPDX-License-Identifier: MIT
// Package: generator
//
// errors.go — sentinel errors for the generator package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with %w wrapping.
//   • Generators never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package generator

import "errors"

// ErrNegativeLength indicates a requested sequence length below zero.
var ErrNegativeLength = errors.New("generator: length must be >= 0")

// ErrEmptyAlphabet indicates an alphabet without symbols.
var ErrEmptyAlphabet = errors.New("generator: alphabet is empty")
