package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "inside", value: 0.5, lo: 0, hi: 1, expected: 0.5},
		{name: "below", value: -1, lo: 0, hi: 1, expected: 0},
		{name: "above", value: 2, lo: 0, hi: 1, expected: 1},
		{name: "on bound", value: 1, lo: 0, hi: 1, expected: 1},
		{name: "inverted pins hi", value: 0.5, lo: 1, hi: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.lo, tt.hi)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestEpsilon(t *testing.T) {
	if got := Epsilon[float64](); got != math.Nextafter(1, 2)-1 {
		t.Fatalf("Epsilon[float64]() = %g", got)
	}

	if got := Epsilon[float32](); got != math.Nextafter32(1, 2)-1 {
		t.Fatalf("Epsilon[float32]() = %g", got)
	}

	type sample float32
	if got := Epsilon[sample](); float32(got) != math.Nextafter32(1, 2)-1 {
		t.Fatalf("Epsilon[sample]() = %g", got)
	}
}

func TestAbsCopySign(t *testing.T) {
	if Abs(-2.5) != 2.5 || Abs(float32(3)) != 3 {
		t.Fatal("Abs mismatch")
	}

	tests := []struct {
		x, y, want float64
	}{
		{x: 2, y: -1, want: -2},
		{x: -2, y: 1, want: 2},
		{x: -2, y: -1, want: -2},
		{x: 2, y: 0, want: 2},
	}
	for _, tt := range tests {
		if got := CopySign(tt.x, tt.y); got != tt.want {
			t.Errorf("CopySign(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMacc(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	a := []float64{0.5, 0.25, 0, -1, 2}

	if got := Macc(1.0, x, a); got != 1+0.5+0.5+0-4+10 {
		t.Fatalf("Macc() = %v", got)
	}

	if got := Macc(3.0, x[:2], a); got != 3+0.5+0.5 {
		t.Fatalf("Macc() short = %v", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}
