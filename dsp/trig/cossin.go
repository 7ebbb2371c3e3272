package trig

const (
	// 16+1 bits for cos/sin and 15 for dphi saturate the int32 range.
	alignMSB = 32 - 16 - 1

	// pi4 is floor(pi/4 * 2^16).
	pi4 int32 = 51471
)

// CosSin returns the cosine and sine of a wrapped phase, where math.MinInt32
// is -pi and math.MaxInt32 is just below +pi.
//
// The results are scaled to the full int32 range with an amplitude of about
// 2^31 - 0.85*2^15. With the 7-bit table the error is below 9e-6 peak and
// 4e-6 RMS of full scale in each component.
func CosSin(phase int32) (cos, sin int32) {
	octant := uint32(phase)
	if octant&(1<<29) != 0 {
		// pi/4 - phase within the octant
		phase = ^phase
	}

	// Drop the octant bits, leaving the angle in [0, pi/4).
	phase = int32((uint32(phase) << 3) >> (32 - tableDepth - alignMSB))

	lookup := cosSinTable[phase>>alignMSB]
	phase &= 1<<alignMSB - 1

	// Table entries sit at sub-interval midpoints; interpolate from there.
	phase -= 1 << (alignMSB - 1)

	// Enough low bits remain that no rounding bias is needed.
	dphi := (phase * pi4) >> 16

	cos = int32(lookup&0xffff) + 1<<16
	sin = int32(lookup >> 16)

	dcos := (sin * dphi) >> tableDepth
	dsin := (cos * dphi) >> (tableDepth + 1)

	cos = cos<<(alignMSB-1) - dcos
	sin = sin<<alignMSB + dsin

	// Un-fold with the Gray-coded octant bits.
	octant ^= octant >> 1
	if octant&(1<<29) != 0 {
		cos, sin = sin, cos
	}

	if octant&(1<<30) != 0 {
		cos = -cos
	}

	if octant&(1<<31) != 0 {
		sin = -sin
	}

	return cos, sin
}
