// SPDX-License-Identifier: MIT
// Package: sparseblock/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless input. Seeding is
// explicit through WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a build by mutating config before constructors run.
type Option func(*config)

// WithRand provides an explicit RNG for stochastic constructors and value
// functions. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new seeded *rand.Rand.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValueFn sets the per-cell value generator. Panics on nil.
func WithValueFn(fn ValueFn) Option {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}

	return func(c *config) { c.valueFn = fn }
}
