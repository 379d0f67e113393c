// SPDX-License-Identifier: MIT
// Package: sparseblock/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMatrix(rows, cols, opts, cons...). Creates the
//     block, resolves config, runs cons in order.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical blocks.
//   - Safety: constructors return sentinel errors; they never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sparseblock/sparse"
)

// Constructor writes cells into m using the resolved config. Constructors
// validate their parameters before the first write.
type Constructor func(m *sparse.MCSR, cfg config) error

// BuildMatrix creates an empty rows×cols MCSR block, resolves opts and
// applies all constructors in order. Any constructor error is wrapped with
// "BuildMatrix: %w" and returned immediately.
//
// Errors: ErrBadSize for a negative shape, ErrConstructFailed for a nil
// constructor, and whatever a constructor returns.
func BuildMatrix(rows, cols int, opts []Option, cons ...Constructor) (*sparse.MCSR, error) {
	if err := validateMin(MethodBuildMatrix, "rows", rows, 0); err != nil {
		return nil, err
	}
	if err := validateMin(MethodBuildMatrix, "cols", cols, 0); err != nil {
		return nil, err
	}
	m, err := sparse.NewMCSR(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildMatrix, err)
	}

	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildMatrix, i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildMatrix, err)
		}
	}

	return m, nil
}

// BuildCSC is BuildMatrix followed by a conversion to CSC. The result tracks
// rows explicitly, so trailing empty rows survive. csc options apply to the
// conversion.
func BuildCSC(rows, cols int, opts []Option, csc []sparse.Option, cons ...Constructor) (*sparse.CSC, error) {
	m, err := BuildMatrix(rows, cols, opts, cons...)
	if err != nil {
		return nil, err
	}
	c, err := sparse.NewCSCFrom(m, csc...)
	if err != nil {
		return nil, fmt.Errorf("BuildCSC: %w", err)
	}

	return c, nil
}

// put writes one generated value; zero leaves the cell empty.
func put(method string, m *sparse.MCSR, r, c int, v float64) error {
	if err := m.Set(r, c, v); err != nil {
		return builderErrorf(method, ErrConstructFailed, "Set(%d,%d)=%v: %v", r, c, v, err)
	}

	return nil
}
