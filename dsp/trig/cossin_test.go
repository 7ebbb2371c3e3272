package trig

import (
	"math"
	"testing"
)

// amplitude is the constant output magnitude set by the table data range.
const amplitude = float64(1<<31) - 0.85*(1<<15)

func TestCosSinErrorFullSweep(t *testing.T) {
	// log2 of the number of phase values checked; the table is periodic so
	// a 20-bit sweep exercises every entry at many residuals.
	const phaseDepth = 20
	const n = 1 << phaseDepth

	var sum, demod, sumErr, rmsErr, maxErr [2]float64

	for i := range n {
		p := int32(uint32(i) << (32 - phaseDepth))
		c, s := CosSin(p)
		have := [2]float64{float64(c) / amplitude, float64(s) / amplitude}

		rad := 2 * math.Pi * float64(p) / (1 << 32)
		want := [2]float64{math.Cos(rad), math.Sin(rad)}

		sum[0] += have[0]
		sum[1] += have[1]

		demod[0] += have[0]*want[0] - have[1]*want[1]
		demod[1] += have[1]*want[0] + have[0]*want[1]

		for k := range 2 {
			err := have[k] - want[k]
			sumErr[k] += err
			rmsErr[k] += err * err
			maxErr[k] = math.Max(maxErr[k], math.Abs(err))
		}
	}

	for k := range 2 {
		rmsErr[k] = math.Sqrt(rmsErr[k] / n)
	}

	t.Logf("sum: %.2e %.2e", sum[0], sum[1])
	t.Logf("demod: %.2e %.2e", demod[0], demod[1])
	t.Logf("sum_err: %.2e %.2e", sumErr[0], sumErr[1])
	t.Logf("rms: %.2e %.2e", rmsErr[0], rmsErr[1])
	t.Logf("max: %.2e %.2e", maxErr[0], maxErr[1])

	checks := []struct {
		name  string
		value float64
		limit float64
	}{
		{name: "cos mean", value: sum[0], limit: 4e-10},
		{name: "sin mean", value: sum[1], limit: 3e-8},
		{name: "in-phase demod", value: demod[0], limit: 4e-10},
		{name: "quadrature demod", value: demod[1], limit: 1e-8},
		{name: "cos error sum", value: sumErr[0], limit: 4e-10},
		{name: "sin error sum", value: sumErr[1], limit: 4e-10},
		{name: "cos rms", value: rmsErr[0], limit: 4e-6},
		{name: "sin rms", value: rmsErr[1], limit: 4e-6},
		{name: "cos max", value: maxErr[0], limit: 1e-5},
		{name: "sin max", value: maxErr[1], limit: 1e-5},
	}
	for _, c := range checks {
		if math.Abs(c.value) >= c.limit {
			t.Errorf("%s = %.3e, limit %.1e", c.name, c.value, c.limit)
		}
	}
}

func TestCosSinAxes(t *testing.T) {
	const tol = 1e-5 * (1 << 31)

	tests := []struct {
		name     string
		phase    int32
		cos, sin float64
	}{
		{name: "zero", phase: 0, cos: 1, sin: 0},
		{name: "quarter", phase: 1 << 30, cos: 0, sin: 1},
		{name: "minus pi", phase: math.MinInt32, cos: -1, sin: 0},
		{name: "minus quarter", phase: -1 << 30, cos: 0, sin: -1},
		{name: "eighth", phase: 1 << 29, cos: math.Sqrt2 / 2, sin: math.Sqrt2 / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, s := CosSin(tt.phase)
			if d := math.Abs(float64(c) - tt.cos*amplitude); d > tol {
				t.Errorf("cos = %d, want %.0f (diff %.0f)", c, tt.cos*amplitude, d)
			}
			if d := math.Abs(float64(s) - tt.sin*amplitude); d > tol {
				t.Errorf("sin = %d, want %.0f (diff %.0f)", s, tt.sin*amplitude, d)
			}
		})
	}
}

func TestCosSinQuadrantSymmetry(t *testing.T) {
	// A quarter turn swaps the components with one sign flip and a half turn
	// negates both. The octant un-folding makes these exact.
	for i := range 1 << 16 {
		p := int32(uint32(i)*0x9e3779b1 + 12345)
		c, s := CosSin(p)

		cq, sq := CosSin(p + 1<<30)
		if cq != -s || sq != c {
			t.Fatalf("phase %#x: quarter turn (%d, %d), want (%d, %d)", p, cq, sq, -s, c)
		}

		ch, sh := CosSin(p + math.MinInt32)
		if ch != -c || sh != -s {
			t.Fatalf("phase %#x: half turn (%d, %d), want (%d, %d)", p, ch, sh, -c, -s)
		}
	}
}

func TestCosSinTableImmutable(t *testing.T) {
	if got := buildCosSinTable(); got != cosSinTable {
		t.Fatal("table differs from a fresh build")
	}

	for i := 1; i < len(cosSinTable); i++ {
		prev, cur := cosSinTable[i-1], cosSinTable[i]
		if cur>>16 <= prev>>16 {
			t.Fatalf("entry %d: sin must increase over the octant", i)
		}
		if cur&0xffff >= prev&0xffff {
			t.Fatalf("entry %d: cos must decrease over the octant", i)
		}
	}
}
