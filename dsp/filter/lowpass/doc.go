// Package lowpass provides wrapping fixed-point low-pass primitives with
// 64-bit retained state.
//
// Inputs and outputs are int32 in the wrapped phase convention of package
// phase; the state is Q32.32 with the integer estimate in the upper 32 bits
// and the retained fraction below it. Gains are Q32 fractions of the error
// applied per update: k = 1<<24 moves the estimate by 1/256 of the error.
// All arithmetic wraps, so the filters may run on phase and frequency
// values directly.
package lowpass
