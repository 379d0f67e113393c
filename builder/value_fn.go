// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// ValueFn produces a cell value from an optional RNG. It must be
// deterministic for a given RNG state.
type ValueFn func(rng *rand.Rand) float64

// DefaultValueFn always returns DefaultValue.
func DefaultValueFn(_ *rand.Rand) float64 { return DefaultValue }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// ConstantValueFn always yields v. Panics if v is zero or not finite.
func ConstantValueFn(v float64) ValueFn {
	if v == 0 || !finite(v) {
		panic(fmt.Sprintf("ConstantValueFn: value must be finite and non-zero, got %g", v))
	}

	return func(_ *rand.Rand) float64 { return v }
}

// UniformValueFn samples uniformly in [lo, hi). With a nil RNG it yields
// DefaultValue. Panics unless lo ≤ hi and both are finite.
func UniformValueFn(lo, hi float64) ValueFn {
	if !finite(lo) || !finite(hi) || hi < lo {
		panic(fmt.Sprintf("UniformValueFn: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerValueFn samples an integer uniformly from [lo, hi] \ {0}. Integer
// values keep accumulations exact in tests. With a nil RNG it yields
// DefaultValue. Panics when the range is empty or only holds zero.
func IntegerValueFn(lo, hi int) ValueFn {
	if hi < lo || (lo == 0 && hi == 0) {
		panic(fmt.Sprintf("IntegerValueFn: require a non-zero value in [%d,%d]", lo, hi))
	}
	span := hi - lo + 1
	if lo <= 0 && hi >= 0 {
		span-- // skip zero
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultValue
		}
		v := lo + rng.Intn(span)
		if lo <= 0 && v >= 0 {
			v++
		}

		return float64(v)
	}
}
