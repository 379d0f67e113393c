// SPDX-License-Identifier: MIT

// Package sparse - Validity Checker.

package sparse

import "fmt"

// CheckValidity audits the block against declared dimensions and nnz.
// MAIN DESCRIPTION:
//   - On-demand structural audit; orthogonal to every other operation.
//
// Implementation (first violation wins):
//   - Stage 1: rlen, clen >= 0 (*DimensionError).
//   - Stage 2: len(ptr) == clen+1; len(indexes) == len(values) >= nnz;
//     ptr[clen] == nnz == stored size.
//   - Stage 3: ptr[0] == 0, every pointer in [0, nnz] (both modes), and ptr
//     non-decreasing. In non-strict mode a decreasing pointer is tolerated
//     as a placeholder state and the affected column is skipped by later
//     stages.
//   - Stage 4: strictly increasing rows per column, plus every row in
//     [0, rlen).
//   - Stage 5: no stored zero.
//   - Stage 6: capacity within the growth bound of nnz.
//
// Returns:
//   - nil, or a *DimensionError / *ValidationError naming the rule, the
//     offending index and the conflicting values.
//
// Complexity:
//   - Time O(cols + nnz), Space O(1).
func (c *CSC) CheckValidity(rlen, clen, nnz int, strict bool) error {
	if rlen < 0 || clen < 0 || nnz < 0 {
		return dimErr(rlen, clen, fmt.Sprintf("negative declared dimensions (nnz=%d)", nnz))
	}
	if len(c.ptr) != clen+1 {
		return violation(RulePointerLen, len(c.ptr), len(c.ptr), clen+1)
	}
	if len(c.indexes) != len(c.values) || len(c.values) < nnz {
		return violation(RuleBufferLen, nnz, len(c.indexes), len(c.values))
	}
	if c.ptr[clen] != nnz || c.size != nnz {
		return violation(RuleNonZeroCount, clen, c.ptr[clen], c.size, nnz)
	}

	if c.ptr[0] != 0 {
		return violation(RuleMonotonic, 0, c.ptr[0], 0)
	}
	skip := make(map[int]struct{})
	for col := 0; col < clen; col++ {
		if p := c.ptr[col+1]; p < 0 || p > nnz {
			return violation(RulePointerRange, col+1, p, nnz)
		}
		if c.ptr[col] > c.ptr[col+1] {
			if strict {
				return violation(RuleMonotonic, col, c.ptr[col], c.ptr[col+1])
			}
			skip[col] = struct{}{}
		}
	}

	for col := 0; col < clen; col++ {
		if _, ok := skip[col]; ok {
			continue
		}
		lo, hi := c.ptr[col], c.ptr[col+1]
		for k := lo; k < hi; k++ {
			r := c.indexes[k]
			if k > lo && c.indexes[k-1] >= r {
				return violation(RuleSorted, k, c.indexes[k-1], r)
			}
			if r < 0 || r >= rlen {
				return violation(RuleRowBound, k, r, rlen)
			}
		}
	}

	for k := 0; k < nnz; k++ {
		if c.values[k] == 0 {
			return violation(RuleExplicitZero, k, c.values[k])
		}
	}

	if limit := c.capacityBound(nnz); len(c.values) > limit {
		return violation(RuleCapacity, nnz, len(c.values), limit)
	}

	return nil
}

// Validate runs a strict CheckValidity against the block's own dimensions.
func (c *CSC) Validate() error {
	return c.CheckValidity(c.Rows(), c.NumCols(), c.NonZeros(), true)
}
