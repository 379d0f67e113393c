// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for block construction.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves setters against defaults.
//
// Options are read once at construction; a CSC keeps its resolved copy so
// growth and zero-accumulation policy stay stable for the block's lifetime.

package sparse

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultInitCapacity is the buffer capacity of an empty block.
	DefaultInitCapacity = 4

	// DefaultResizeFactor1 multiplies capacity while it is at or below
	// DefaultResizeThreshold.
	DefaultResizeFactor1 = 2.0

	// DefaultResizeFactor2 multiplies capacity above DefaultResizeThreshold.
	DefaultResizeFactor2 = 1.1

	// DefaultResizeThreshold separates the two growth regimes.
	DefaultResizeThreshold = 1024

	// DefaultValidateNaNInf keeps arbitrary float64 values legal.
	DefaultValidateNaNInf = false

	// MaxNonZeros is the addressing limit for stored entries.
	MaxNonZeros = math.MaxInt32

	// unknown marks an untracked dimension.
	unknown = -1
)

// maxNonZeros is the effective limit; tests lower it to exercise overflow.
var maxNonZeros = MaxNonZeros

// ZeroPolicy decides what Add does when an accumulation lands exactly on zero.
type ZeroPolicy uint8

const (
	// ZeroDelete removes the entry, so no zero is stored (default).
	ZeroDelete ZeroPolicy = iota
	// ZeroKeep stores the explicit zero. Strict validity checks then fail
	// until Compact is called.
	ZeroKeep
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRowsNegative     = "sparse: WithRows: rows must be >= 0"
	panicColsNegative     = "sparse: WithCols: cols must be >= 0"
	panicCapacityNegative = "sparse: WithInitialCapacity: capacity must be >= 0"
	panicGrowthInvalid    = "sparse: WithGrowth: factors must be finite and > 1, threshold >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rows           int     // unknown or explicit row count
	cols           int     // unknown or explicit column count
	capacity       int     // initial buffer capacity
	f1, f2         float64 // growth factors
	threshold      int     // capacity threshold between f1 and f2
	zeroPolicy     ZeroPolicy
	validateNaNInf bool
}

// WithRows fixes the logical row count. Without it a CSC built empty or from
// raw buffers infers rows lazily as max(rowIndex)+1.
func WithRows(rows int) Option {
	if rows < 0 {
		panic(panicRowsNegative)
	}

	return func(o *Options) { o.rows = rows }
}

// WithCols fixes the logical column count of a conversion result. Without it
// the count is inferred from the source's native layout.
func WithCols(cols int) Option {
	if cols < 0 {
		panic(panicColsNegative)
	}

	return func(o *Options) { o.cols = cols }
}

// WithInitialCapacity reserves buffer capacity for conversion and stream
// results (NewCSC takes its capacity as an argument).
func WithInitialCapacity(capacity int) Option {
	if capacity < 0 {
		panic(panicCapacityNegative)
	}

	return func(o *Options) { o.capacity = capacity }
}

// WithGrowth replaces the geometric growth policy: capacity is multiplied by
// f1 while it is at or below threshold and by f2 above it.
//
// Complexity: O(1).
// AI-Hints: a smaller f2 trades extra reallocations for tighter memory on large blocks.
func WithGrowth(f1, f2 float64, threshold int) Option {
	if math.IsNaN(f1) || math.IsInf(f1, 0) || f1 <= 1 ||
		math.IsNaN(f2) || math.IsInf(f2, 0) || f2 <= 1 || threshold < 0 {
		panic(panicGrowthInvalid)
	}

	return func(o *Options) {
		o.f1, o.f2, o.threshold = f1, f2, threshold
	}
}

// WithZeroAccumulation selects the Add policy for results equal to zero.
func WithZeroAccumulation(p ZeroPolicy) Option {
	return func(o *Options) { o.zeroPolicy = p }
}

// WithValidateNaNInf rejects NaN and ±Inf in Set, Add and Append.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; Time O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		rows:           unknown,
		cols:           unknown,
		capacity:       DefaultInitCapacity,
		f1:             DefaultResizeFactor1,
		f2:             DefaultResizeFactor2,
		threshold:      DefaultResizeThreshold,
		zeroPolicy:     ZeroDelete,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// maxFactor is the larger growth factor; it bounds overallocation.
func (o Options) maxFactor() float64 { return math.Max(o.f1, o.f2) }
