package estim

import (
	dto "github.com/prometheus/client_model/go"
)

// SetFaultHookForTest installs fn for parallel tasks and returns a restore func.
func SetFaultHookForTest(fn func(group int) error) (restore func()) {
	prev := faultHook
	faultHook = fn

	return func() { faultHook = prev }
}

// FallbacksForTest reads the fallback counter.
func FallbacksForTest() float64 {
	var m dto.Metric
	if err := fallbacks.Write(&m); err != nil {
		panic(err)
	}

	return m.GetCounter().GetValue()
}
