// SPDX-License-Identifier: MIT
// Package: sparseblock/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with builderErrorf, which keeps %w.
//   • Option constructors (WithX) panic; Constructors never do.

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative shape or band width.
var ErrBadSize = errors.New("builder: invalid size")

// ErrInvalidProbability indicates a probability outside [0,1] or NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a write the target block
// rejected.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the method and a formatted detail:
// "<Method>: <detail>: <err>".
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
