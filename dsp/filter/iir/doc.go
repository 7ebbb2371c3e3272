// Package iir provides a universal biquadratic IIR filter for control loops.
//
// An [IIR] holds only configuration: the coefficients BA = [b0, b1, b2, a1,
// a2] (feedback taps negated, a0 = 1), an output offset and output limits.
// The filter state is a separate [Vec5] owned by the caller and passed to
// [IIR.Update]. It stores the raw input and output history, which has a
// fixed meaning independent of the coefficients, so:
//
//   - coefficients can be swapped between updates without a bump,
//   - one configuration can drive any number of independent states,
//   - clamping the fed-back output is a complete anti-windup for every
//     biquad topology (P, PI, PID with gain limits, notches, ...), with no
//     back-off that would reduce the usable output range,
//   - an input offset (set-point) maps exactly onto an output offset through
//     the DC gain, see [IIR.SetXOffset].
//
// Higher orders are built by chaining sections with [Cascade].
package iir
