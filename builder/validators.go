// SPDX-License-Identifier: MIT

package builder

import "math"

// validateMin ensures got ≥ lo, reporting ErrBadSize.
func validateMin(method, name string, got, lo int) error {
	if got < lo {
		return builderErrorf(method, ErrBadSize, "%s must be ≥ %d, got %d", name, lo, got)
	}

	return nil
}

// validateProbability ensures p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%g not in [%g,%g]", p, MinProbability, MaxProbability)
	}

	return nil
}
