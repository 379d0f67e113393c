// SPDX-License-Identifier: MIT
// Package: sparseblock/builder
//
// impl_random_sparse.go - RandomSparse(p) constructor.
//
// Model:
//   - Each cell is kept independently with probability p (Bernoulli trial
//     rng.Float64() < p), then valued by cfg.valueFn(rng).
//   - Trials run row asc, then col asc; a value draw follows each success.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p = 0 writes nothing; p = 1 fills every cell without trials.
//
// Complexity: O(rows·cols) trials.

package builder

import "github.com/katalvlaran/sparseblock/sparse"

// RandomSparse returns a Constructor that fills cells independently with
// probability p.
func RandomSparse(p float64) Constructor {
	return func(m *sparse.MCSR, cfg config) error {
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%g", p)
		}
		if p == MinProbability {
			return nil
		}

		rng := cfg.rng
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if p < MaxProbability && rng.Float64() >= p {
					continue
				}
				if err := put(MethodRandomSparse, m, i, j, cfg.valueFn(rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
