// Package pll provides type-II phase-locked loops on wrapped int32 phase.
//
// Phase and frequency share the representation of package phase: one turn
// spans the full int32 range and every addition wraps. Each loop takes one
// optional phase sample per update, expressed as (x, ok), and returns or
// exposes a phase and a frequency estimate. A missing sample (ok == false)
// advances the loop open loop from its retained frequency state.
//
// Four loops are provided:
//
//   - [PLL] divides its errors by powers of two (shifts) and needs no
//     multiply.
//   - [PLL1] and [PLL2] compose first- and second-order low-pass blocks
//     from package lowpass with 64-bit retained state.
//   - [NoiseShaped] applies an arbitrary gain by multiplication and keeps
//     the quantization remainder in 64-bit accumulators.
//
// The loops do not share internal state. [Tracker] is the common contract
// and [New] selects an implementation by [Variant]. No variant is the
// default.
//
// Update never allocates and never fails. Shift arguments outside
// [1, 30] are a contract violation; builds with the idspdebug tag panic on
// them.
package pll
