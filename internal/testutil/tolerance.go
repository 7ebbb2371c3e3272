package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-idsp/dsp/phase"
)

// WrappedDiff returns |a-b| on the wrapped phase circle.
func WrappedDiff(a, b int32) uint32 {
	return phase.Abs(phase.Diff(a, b))
}

// RequireWrappedWithin fails t if got and want are further apart than tol
// on the wrapped phase circle.
func RequireWrappedWithin(t *testing.T, what string, got, want int32, tol uint32) {
	t.Helper()
	if d := WrappedDiff(got, want); d > tol {
		t.Fatalf("%s: got %#x, want %#x (diff %d > tol %d)", what, got, want, d, tol)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
