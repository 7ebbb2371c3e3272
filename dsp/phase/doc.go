// Package phase defines the wrapped fixed-point angle convention shared by
// the trig and pll packages.
//
// An angle (or an angular rate per sample) is an int32 whose full range is
// one period: math.MinInt32 is -pi and math.MaxInt32 is just below +pi. Go
// defines signed integer overflow as two's-complement wrap-around, so plain
// addition, subtraction and arithmetic right shift on these values are the
// modulo-2pi operations they denote. Nothing here or in the kernels relies on
// overflow being trapped.
package phase
