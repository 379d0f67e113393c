// SPDX-License-Identifier: MIT

// Package matrix: tolerance comparison across Matrix implementations.

package matrix

import "fmt"

// matrixErrorf tags an error with the exported entry point that produced it.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}

// AllClose reports whether |a(i,j) - b(i,j)| ≤ atol + rtol*|b(i,j)| for every cell.
// MAIN DESCRIPTION:
//   - Shape-checked element-wise compare; works for any Matrix pair, so a
//     sparse block can be compared against its dense reference directly.
//
// Implementation:
//   - Stage 1: reject non-finite tolerances; abs negative ones.
//   - Stage 2: ValidatePair (nil and shape).
//   - Stage 3: flat-slice fast path when both operands are *Dense, else At().
//
// Errors:
//   - ErrNaNInf for non-finite tolerances; ErrNilMatrix; ErrDimensionMismatch.
//
// Determinism:
//   - Row-major scan with early exit on the first violation.
//
// Complexity:
//   - Time O(r*c) plus the cost of At for non-dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	if rtol < 0 {
		rtol = -rtol
	}
	if atol < 0 {
		atol = -atol
	}
	if err := ValidatePair(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !within(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, err := a.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			bv, err := b.At(i, j)
			if err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !within(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal is AllClose with zero tolerances (exact equality).
func Equal(a, b Matrix) (bool, error) { return AllClose(a, b, 0, 0) }

// within is the scalar kernel shared by both AllClose paths.
func within(a, b, rtol, atol float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	absb := b
	if absb < 0 {
		absb = -absb
	}

	return diff <= atol+rtol*absb
}
