package trig

import "math"

// tableDepth is log2 of the number of first-octant table entries.
const tableDepth = 7

// cosSinTable holds packed first-octant (cos, sin) pairs sampled at the
// midpoint of each of the 1<<tableDepth sub-intervals of [0, pi/4).
//
// The low 16 bits carry (2*cos-1)*0xffff-1: cos lies in (1/2, 1] there, so
// dropping the leading one gains a bit of resolution. The high 16 bits carry
// sin*0xffff.
var cosSinTable = buildCosSinTable()

func buildCosSinTable() [1 << tableDepth]uint32 {
	const amplitude = math.MaxUint16

	var t [1 << tableDepth]uint32
	for i := range t {
		sin, cos := math.Sincos(math.Pi / 4 * (float64(i) + 0.5) / (1 << tableDepth))
		// The -1 LSB bias is undone by the 1<<16 offset added on decode.
		c := uint32(math.Round((cos*2-1)*amplitude - 1))
		s := uint32(math.Round(sin * amplitude))
		t[i] = c | s<<16
	}

	return t
}
