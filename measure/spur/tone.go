package spur

import "github.com/cwbudde/algo-idsp/dsp/trig"

// fullScale maps trig.CosSin output to [-1, 1].
const fullScale = 1 << 31

// CosSin returns n cosine samples of trig.CosSin at phases 0, step,
// 2*step, ... scaled to unit amplitude.
func CosSin(n int, step int32) []float64 {
	out := make([]float64, n)

	var p int32
	for i := range out {
		c, _ := trig.CosSin(p)
		out[i] = float64(c) / fullScale
		p += step
	}

	return out
}
