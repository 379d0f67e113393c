// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Algorithms return these sentinels (optionally wrapped with %w) and tests
// match them via errors.Is. No exported function panics on user input.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so logs are easy to grep.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// (or negative for the zero-OK constructor).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrBadData indicates that a flat buffer does not match the requested shape.
	ErrBadData = errors.New("matrix: data length does not match shape")
)
