package pll

// NoiseShaped is a type-II phase-locked loop with a multiplicative gain.
//
// Frequency and phase are Q32.32 accumulators. Each correction is applied
// twice: once before the phase advance and once after it. The second
// application carries the truncated remainder into the next cycle.
//
// The visible estimates are the previous cycle's integer phase and its
// increment.
type NoiseShaped struct {
	x  int32 // last input
	y0 int32 // visible phase
	f0 int32 // visible frequency
	f  int64 // Q32.32 frequency
	y  int64 // Q32.32 phase
}

// Update advances the loop with gain k, a Q32 fraction applied to the
// frequency and phase errors.
//
// Without ok, the phase accumulator advances by the frequency accumulator
// while the input tracker and the visible phase advance by the visible
// frequency.
func (n *NoiseShaped) Update(x int32, ok bool, k int32) {
	if !ok {
		n.y += n.f
		n.x += n.f0
		n.y0 += n.f0

		return
	}

	dx := x - n.x
	n.x = x

	df := int64(dx-int32(n.f>>32)) * int64(k)
	n.f += df
	n.y += n.f
	n.f += df

	dy := int64(x-int32(n.y>>32)) * int64(k)
	n.y += dy
	y := int32(n.y >> 32)
	n.y += dy

	n.f0 = y - n.y0
	n.y0 = y
}

// Phase returns the visible phase estimate.
func (n *NoiseShaped) Phase() int32 { return n.y0 }

// Frequency returns the visible frequency estimate.
func (n *NoiseShaped) Frequency() int32 { return n.f0 }

// Reset clears the loop state.
func (n *NoiseShaped) Reset() { *n = NoiseShaped{} }
