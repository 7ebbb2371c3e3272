package trig

// atanPoly holds the odd-polynomial coefficients of atan(r) on [0, 1] in Q31
// (Abramowitz & Stegun 4.4.49, |error| <= 1e-5 rad), lowest order first.
var atanPoly = [...]int64{2147195885, -709312775, 386849852, -182821725, 44743037}

// radToPhase is round(2^31/pi), radians to phase units in Q31.
const radToPhase = 683565276

// Atan2 returns the wrapped phase of the vector (x, y), the fixed-point
// counterpart of math.Atan2(y, x) scaled so that pi maps to math.MinInt32.
//
// Inputs may use any common scale; only their ratio matters. The error is
// about 1.2e-5 rad peak. Atan2(0, 0) is 0.
func Atan2(y, x int32) int32 {
	uy, ux := uint32(y), uint32(x)
	if y < 0 {
		uy = -uy
	}

	if x < 0 {
		ux = -ux
	}

	// Fold into the first octant, 0 <= uy <= ux.
	swap := uy > ux
	if swap {
		ux, uy = uy, ux
	}

	if ux == 0 {
		return 0
	}

	// r = uy/ux in Q31, r <= 1.
	r := int64((uint64(uy) << 31) / uint64(ux))
	r2 := r * r >> 31

	p := atanPoly[len(atanPoly)-1]
	for i := len(atanPoly) - 2; i >= 0; i-- {
		p = atanPoly[i] + p*r2>>31
	}

	a := uint32((p * r >> 31) * radToPhase >> 31)

	if swap {
		a = 1<<30 - a
	}

	if x < 0 {
		a = 1<<31 - a
	}

	if y < 0 {
		a = -a
	}

	return int32(a)
}
