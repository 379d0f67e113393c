// SPDX-License-Identifier: MIT
// Package: sparseblock/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil              (pure unless seeded)
//   • valueFn = DefaultValueFn   (always DefaultValue)

package builder

import "math/rand"

// config aggregates all knobs used by constructors. It is passed by value.
type config struct {
	rng     *rand.Rand
	valueFn ValueFn
}

// newConfig applies options in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{valueFn: DefaultValueFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
