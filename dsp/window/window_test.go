package window

import (
	"math"
	"testing"
)

func TestGenerate(t *testing.T) {
	for _, typ := range []Type{TypeRectangular, TypeHann, TypeBlackmanHarris4Term} {
		t.Run(Info(typ).Name, func(t *testing.T) {
			w := Generate(typ, 64)
			if len(w) != 64 {
				t.Fatalf("len=%d, want 64", len(w))
			}

			for i, v := range w {
				if math.IsNaN(v) || math.IsInf(v, 0) || v < -1e-12 || v > 1+1e-12 {
					t.Fatalf("coefficient[%d] invalid: %v", i, v)
				}
			}
		})
	}
}

func TestGenerateEmpty(t *testing.T) {
	if w := Generate(TypeHann, 0); w != nil {
		t.Fatalf("Generate(0) = %v, want nil", w)
	}

	if w := Generate(TypeHann, 1); len(w) != 1 || w[0] != 0 {
		t.Fatalf("Generate(1) = %v", w)
	}
}

func TestBlackmanHarrisPeriodic(t *testing.T) {
	const n = 256

	w := Generate(TypeBlackmanHarris4Term, n, WithPeriodic())
	if math.Abs(w[0]-0.00006) > 1e-12 {
		t.Fatalf("w[0] = %v, want 6e-5", w[0])
	}
	if math.Abs(w[n/2]-1) > 1e-12 {
		t.Fatalf("w[n/2] = %v, want 1", w[n/2])
	}

	sum := 0.0
	for i := 1; i < n; i++ {
		if math.Abs(w[i]-w[n-i]) > 1e-12 {
			t.Fatalf("w[%d] = %v, w[%d] = %v", i, w[i], n-i, w[n-i])
		}
		sum += w[i]
	}
	sum += w[0]

	if gain := sum / n; math.Abs(gain-Info(TypeBlackmanHarris4Term).CoherentGain) > 1e-12 {
		t.Fatalf("coherent gain = %v", gain)
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if math.Abs(a[15]) > 1e-12 {
		t.Fatalf("symmetric end = %v, want 0", a[15])
	}
	if b[15] < 1e-3 {
		t.Fatalf("periodic end = %v, want > 0", b[15])
	}
}

func TestApplyMatchesGenerate(t *testing.T) {
	buf := make([]float64, 32)
	for i := range buf {
		buf[i] = 2
	}

	Apply(TypeHann, buf, WithPeriodic())

	w := Generate(TypeHann, 32, WithPeriodic())
	for i := range buf {
		if buf[i] != 2*w[i] {
			t.Fatalf("buf[%d] = %v, want %v", i, buf[i], 2*w[i])
		}
	}

	Apply(TypeHann, nil)
}

func TestInfo(t *testing.T) {
	if m := Info(TypeBlackmanHarris4Term); m.MainLobeBins != 4 || m.Name == "" {
		t.Fatalf("Info(bh4) = %+v", m)
	}

	if m := Info(Type(99)); m != (Metadata{}) {
		t.Fatalf("Info(99) = %+v", m)
	}
}
