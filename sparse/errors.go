// SPDX-License-Identifier: MIT
// Package sparse: sentinel errors and typed diagnostics.
// Algorithms return sentinels (optionally wrapped with %w) or one of the
// typed errors below; callers match with errors.Is / errors.As.

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." so logs are easy to grep.
var (
	// ErrDimension reports negative or inconsistent row/column counts.
	ErrDimension = errors.New("sparse: invalid dimensions")

	// ErrOutOfRange reports a row or column index outside the block.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrCapacityOverflow reports that nnz would exceed the addressing limit.
	ErrCapacityOverflow = errors.New("sparse: capacity overflow")

	// ErrStructure reports a structural invariant violation.
	ErrStructure = errors.New("sparse: structural violation")

	// ErrIOFormat reports a malformed bulk-deserialization stream.
	ErrIOFormat = errors.New("sparse: malformed stream")

	// ErrNaNInf reports a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf value")

	// ErrBadSparsity reports a sparsity outside [0,1] (or NaN).
	ErrBadSparsity = errors.New("sparse: sparsity must be in [0,1]")

	// ErrNilBlock reports a nil source block.
	ErrNilBlock = errors.New("sparse: nil block")

	// ErrUnsupportedLayout reports a Block that no conversion accepts.
	ErrUnsupportedLayout = errors.New("sparse: unsupported layout")
)

// DimensionError describes a rejected shape.
type DimensionError struct {
	Rows, Cols int    // offending dimensions (-1 when not applicable)
	Reason     string // short human-readable cause
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("sparse: invalid dimensions rows=%d cols=%d: %s", e.Rows, e.Cols, e.Reason)
}

// Is matches ErrDimension.
func (e *DimensionError) Is(target error) bool { return target == ErrDimension }

// CapacityOverflowError reports a request beyond the addressing limit.
type CapacityOverflowError struct {
	Requested int64
	Limit     int64
}

func (e *CapacityOverflowError) Error() string {
	return fmt.Sprintf("sparse: %d non-zeros exceed the limit of %d", e.Requested, e.Limit)
}

// Is matches ErrCapacityOverflow.
func (e *CapacityOverflowError) Is(target error) bool { return target == ErrCapacityOverflow }

// Rule names the structural check that failed.
type Rule string

// Rules reported by CheckValidity, in evaluation order.
const (
	RuleDimensions   Rule = "dimensions"
	RulePointerLen   Rule = "pointer-length"
	RuleBufferLen    Rule = "buffer-length"
	RuleNonZeroCount Rule = "nnz"
	RulePointerRange Rule = "pointer-range"
	RuleMonotonic    Rule = "pointer-monotonic"
	RuleSorted       Rule = "sorted-unique"
	RuleRowBound     Rule = "row-bound"
	RuleExplicitZero Rule = "explicit-zero"
	RuleCapacity     Rule = "capacity"
)

// ValidationError is the structured result of a failed validity check.
// Index is the offending position (a column for pointer rules, a buffer
// position otherwise). Values holds the conflicting values; integer
// quantities (pointers, row indices, lengths) are reported as float64.
type ValidationError struct {
	Rule   Rule
	Index  int
	Values []float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sparse: %s violated at %d: %v", e.Rule, e.Index, e.Values)
}

// Is matches ErrStructure.
func (e *ValidationError) Is(target error) bool { return target == ErrStructure }

// violation builds a ValidationError from integer or float payloads.
func violation[T int | float64](rule Rule, index int, values ...T) *ValidationError {
	vs := make([]float64, len(values))
	for i, v := range values {
		vs[i] = float64(v)
	}

	return &ValidationError{Rule: rule, Index: index, Values: vs}
}

// FormatError describes a malformed bulk stream.
// Record is the 0-based ordinal of the record being consumed (a triple for
// ultra-sparse streams, a column for sparse streams).
type FormatError struct {
	Stream string
	Record int
	Reason string
	Err    error // underlying reader failure, if any
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sparse: %s stream record %d: %s: %v", e.Stream, e.Record, e.Reason, e.Err)
	}

	return fmt.Sprintf("sparse: %s stream record %d: %s", e.Stream, e.Record, e.Reason)
}

// Is matches ErrIOFormat.
func (e *FormatError) Is(target error) bool { return target == ErrIOFormat }

// Unwrap exposes the underlying reader error.
func (e *FormatError) Unwrap() error { return e.Err }

// cscErrorf wraps an error with a uniform CSC context and call-site indices.
func cscErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSC.%s(%d,%d): %w", method, row, col, err)
}

// dimErr is shorthand for a DimensionError.
func dimErr(rows, cols int, reason string) error {
	return &DimensionError{Rows: rows, Cols: cols, Reason: reason}
}
