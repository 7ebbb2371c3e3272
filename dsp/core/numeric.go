package core

import "math"

const defaultEpsilon = 1e-12

// Float is the set of floating-point sample types the kernels operate on.
type Float interface {
	~float32 | ~float64
}

// Epsilon returns the machine epsilon of T: the gap between 1 and the next
// representable value.
func Epsilon[T Float]() T {
	var one T = 1
	if T(one+T(1e-10)) == one {
		return T(0x1p-23)
	}

	return T(0x1p-52)
}

// Abs returns |x|.
func Abs[T Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// CopySign returns a value with the magnitude of x and the sign of y.
// A zero y counts as positive.
func CopySign[T Float](x, y T) T {
	if (x < 0) != (y < 0) {
		return -x
	}

	return x
}

// Clamp limits value to the inclusive range [lo, hi].
//
// Unlike a swap-tolerant clamp, lo must not exceed hi: the bounds are applied
// in order so that a misconfigured range pins the output to hi.
func Clamp[T Float](value, lo, hi T) T {
	if value < lo {
		value = lo
	}

	if value > hi {
		value = hi
	}

	return value
}

// Macc returns y0 + sum(x[i]*a[i]) over the common length of x and a.
func Macc[T Float](y0 T, x, a []T) T {
	n := min(len(x), len(a))
	for i := range n {
		y0 += x[i] * a[i]
	}

	return y0
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
