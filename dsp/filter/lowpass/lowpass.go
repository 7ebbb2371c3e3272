package lowpass

import "math"

// Lowpass1 is a first-order low-pass filter.
type Lowpass1 struct {
	// Y is the Q32.32 filter state.
	Y int64
}

// Update moves the state towards x by the fraction k/2^32 of the error and
// returns the integer estimate.
func (l *Lowpass1) Update(x int32, k uint32) int32 {
	e := x - int32(l.Y>>32)
	l.Y += int64(e) * int64(k)

	return int32(l.Y >> 32)
}

// Output returns the integer estimate without updating.
func (l *Lowpass1) Output() int32 {
	return int32(l.Y >> 32)
}

// Lowpass2 is a second-order low-pass filter. It integrates the error into
// a rate DY and applies rate plus a proportional correction to Y, so a ramp
// input is tracked without steady-state error.
type Lowpass2 struct {
	// Y is the Q32.32 filter state.
	Y int64
	// DY is the Q32.32 rate retained between updates.
	DY int64
}

// Update advances the filter with input x and gains k = [integral,
// proportional] and returns the Q32.32 state.
func (l *Lowpass2) Update(x int32, k [2]int32) int64 {
	e := int64(x - int32(l.Y>>32))
	l.DY += e * int64(k[0])
	l.Y += l.DY + e*int64(k[1])

	return l.Y
}

// Output returns the integer estimate without updating.
func (l *Lowpass2) Output() int32 {
	return int32(l.Y >> 32)
}

// Gain2 computes Lowpass2 gains for a loop bandwidth k (Q32 fraction of the
// sample rate times 2pi). g overrides the proportional gain; nil selects
// sqrt(2)*k for a maximally flat (damping 1/sqrt(2)) response. Both gains
// saturate to the int32 range.
func Gain2(k int32, g *int32) [2]int32 {
	k0 := int64(k) * int64(k) >> 32

	var k1 int32
	if g != nil {
		k1 = *g
	} else {
		k1 = saturate(math.Round(math.Sqrt2 * float64(k)))
	}

	return [2]int32{int32(k0), k1}
}

func saturate(v float64) int32 {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(v)
	}
}
