package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^jw) of the linear
// (unclamped, offset-free) part of the filter at freqHz for the given sample
// rate.
func (f *IIR[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1

	b0, b1, b2 := float64(f.BA[0]), float64(f.BA[1]), float64(f.BA[2])
	a1, a2 := float64(f.BA[3]), float64(f.BA[4])

	num := complex(b0, 0) + complex(b1, 0)*z1 + complex(b2, 0)*z2
	den := 1 - complex(a1, 0)*z1 - complex(a2, 0)*z2

	return num / den
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (f *IIR[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}

// Phase returns the phase response in radians in [-pi, pi].
func (f *IIR[T]) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(f.Response(freqHz, sampleRate))
}
