package iir

import "github.com/cwbudde/algo-idsp/dsp/core"

// Cascade is an ordered series of sections where each section's output
// feeds the next. Like IIR it holds configuration only; the caller provides
// one state vector per section.
type Cascade[T core.Float] []IIR[T]

// Update runs x0 through every section and returns the last output. xy must
// hold one state per section. hold is applied to every section, freezing the
// whole chain at its last output.
func (c Cascade[T]) Update(xy []Vec5[T], x0 T, hold bool) T {
	if len(c) == 0 {
		return x0
	}

	_ = xy[len(c)-1] // bounds check hint
	for i := range c {
		x0 = c[i].Update(&xy[i], x0, hold)
	}

	return x0
}

// Order returns the total filter order (2 per section).
func (c Cascade[T]) Order() int {
	return 2 * len(c)
}

// Response returns the product of the section responses.
func (c Cascade[T]) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c {
		h *= c[i].Response(freqHz, sampleRate)
	}

	return h
}

// Validate validates every section.
func (c Cascade[T]) Validate() error {
	for i := range c {
		if err := c[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
