package phase

import (
	"math"
	"testing"
)

func TestFromRadians(t *testing.T) {
	tests := []struct {
		name string
		rad  float64
		want int32
	}{
		{name: "zero", rad: 0, want: 0},
		{name: "quarter", rad: math.Pi / 2, want: Quarter},
		{name: "minus quarter", rad: -math.Pi / 2, want: -Quarter},
		{name: "pi wraps", rad: math.Pi, want: math.MinInt32},
		{name: "minus pi", rad: -math.Pi, want: math.MinInt32},
		{name: "full turn", rad: 2 * math.Pi, want: 0},
		{name: "beyond", rad: 2*math.Pi + math.Pi/2, want: Quarter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRadians(tt.rad); got != tt.want {
				t.Fatalf("FromRadians(%v) = %d, want %d", tt.rad, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, p := range []int32{0, 1, -1, Quarter, math.MaxInt32, math.MinInt32, 0x71f63049} {
		if got := FromRadians(ToRadians(p)); got != p {
			t.Errorf("radians round trip %d -> %d", p, got)
		}
		if got := FromTurns(ToTurns(p)); got != p {
			t.Errorf("turns round trip %d -> %d", p, got)
		}
	}
}

func TestHz(t *testing.T) {
	f := FromHz(1000, 48000)
	if got := ToHz(f, 48000); math.Abs(got-1000) > 1e-5 {
		t.Fatalf("ToHz(FromHz(1000)) = %v", got)
	}

	if FromHz(1000, 0) != 0 {
		t.Fatal("non-positive sample rate must yield zero")
	}

	// 47 kHz at 48 kHz aliases to -1 kHz.
	if got := ToHz(FromHz(47000, 48000), 48000); math.Abs(got+1000) > 1e-5 {
		t.Fatalf("alias = %v, want -1000", got)
	}
}

func TestDiffWraps(t *testing.T) {
	if got := Diff(math.MinInt32, math.MaxInt32); got != 1 {
		t.Fatalf("Diff across -pi = %d, want 1", got)
	}

	if got := Abs(math.MinInt32); got != 1<<31 {
		t.Fatalf("Abs(-pi) = %d", got)
	}
	if got := Abs(-5); got != 5 {
		t.Fatalf("Abs(-5) = %d", got)
	}
}
