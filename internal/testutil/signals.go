package testutil

import "math/rand"

// PhaseRamp returns n wrapped phases start+step, start+2*step, ...: the
// input of a loop locked to the constant frequency step.
func PhaseRamp(start, step int32, n int) []int32 {
	out := make([]int32, n)
	x := start
	for i := range out {
		x += step
		out[i] = x
	}

	return out
}

// DeterministicPhases returns n uniformly distributed phases with a fixed
// seed for reproducibility.
func DeterministicPhases(seed int64, n int) []int32 {
	out := make([]int32, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = int32(rng.Uint32())
	}

	return out
}
