// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper that resolves setters against defaults.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	// Sparse blocks store arbitrary float64 values, so the reference matrix
	// follows the same permissive default.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation in Set.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; Time O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
