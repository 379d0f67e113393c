// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/sparseblock/sparse"

// Diagonal returns a Constructor that fills (i, i) for i < min(rows, cols).
// Complexity: O(min(rows, cols)).
func Diagonal() Constructor {
	return func(m *sparse.MCSR, cfg config) error {
		for i := 0; i < min(m.Rows(), m.Cols()); i++ {
			if err := put(MethodDiagonal, m, i, i, cfg.valueFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Band returns a Constructor that fills every cell with
// -lower ≤ col-row ≤ upper. Band(0, 0) is Diagonal.
//
// Errors: ErrBadSize when lower or upper is negative.
// Complexity: O(rows · (lower+upper+1)).
func Band(lower, upper int) Constructor {
	return func(m *sparse.MCSR, cfg config) error {
		if err := validateMin(MethodBand, "lower", lower, 0); err != nil {
			return err
		}
		if err := validateMin(MethodBand, "upper", upper, 0); err != nil {
			return err
		}
		for i := 0; i < m.Rows(); i++ {
			lo, hi := max(0, i-lower), min(m.Cols()-1, i+upper)
			for j := lo; j <= hi; j++ {
				if err := put(MethodBand, m, i, j, cfg.valueFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
