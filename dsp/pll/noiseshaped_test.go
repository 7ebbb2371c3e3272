package pll

import (
	"testing"

	"github.com/cwbudde/algo-idsp/internal/testutil"
)

func TestNoiseShapedStepResponse(t *testing.T) {
	var n NoiseShaped

	n.Update(0x10000, true, 1<<24)
	if n.Phase() != 0x1ff || n.Frequency() != 0x1ff {
		t.Fatalf("after one sample: (%#x, %#x), want (0x1ff, 0x1ff)", n.Phase(), n.Frequency())
	}

	n.Update(0x20000, true, 1<<24)
	if n.Phase() != 2038 || n.Frequency() != 1527 {
		t.Fatalf("after two samples: (%d, %d), want (2038, 1527)", n.Phase(), n.Frequency())
	}
}

func TestNoiseShapedConvergence(t *testing.T) {
	const cycles = 1 << 14

	var n NoiseShaped
	for i, x := range testutil.PhaseRamp(0, testFrequency, cycles) {
		n.Update(x, true, 1<<24)
		if i > cycles/4 {
			testutil.RequireWrappedWithin(t, "frequency", n.Frequency(), testFrequency, 1)
		}
		if i > cycles/2 {
			testutil.RequireWrappedWithin(t, "phase", n.Phase(), x, 1)
		}
	}
}

func TestNoiseShapedMissingSamples(t *testing.T) {
	const cycles = 1 << 14

	for _, gap := range []int{1, 5, 50} {
		ramp := testutil.PhaseRamp(0, testFrequency, cycles+gap+200)

		var n NoiseShaped
		for _, x := range ramp[:cycles] {
			n.Update(x, true, 1<<24)
		}

		for i, x := range ramp[cycles:] {
			n.Update(x, i >= gap, 1<<24)
			testutil.RequireWrappedWithin(t, "phase", n.Phase(), x, 1)
			testutil.RequireWrappedWithin(t, "frequency", n.Frequency(), testFrequency, 1)
		}
	}
}

func TestNoiseShapedMissingSampleKeepsVisibleRate(t *testing.T) {
	var n NoiseShaped
	n.Update(0x10000, true, 1<<24)

	y, f := n.Phase(), n.Frequency()
	n.Update(0, false, 1<<24)

	if n.Frequency() != f || n.Phase() != y+f {
		t.Fatalf("missing sample: (%d, %d), want (%d, %d)", n.Phase(), n.Frequency(), y+f, f)
	}
}
