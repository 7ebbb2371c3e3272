package iir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-idsp/dsp/core"
)

// Vec5 is either a coefficient vector [b0, b1, b2, a1, a2] or a filter
// state [x0, x1, x2, y1, y2]. Lower indices are more recent samples.
type Vec5[T core.Float] [5]T

// IIR is a biquad filter configuration. The new output is
//
//	y0 = y_offset + b0*x0 + b1*x1 + b2*x2 + a1*y1 + a2*y2
//
// limited to [YMin, YMax]. The JSON field names are the configuration
// contract of the management plane.
type IIR[T core.Float] struct {
	BA      Vec5[T] `json:"ba"`
	YOffset T       `json:"y_offset"`
	YMin    T       `json:"y_min"`
	YMax    T       `json:"y_max"`
}

// New returns a proportional filter with the given gain and output limits.
func New[T core.Float](gain, yMin, yMax T) IIR[T] {
	return IIR[T]{
		BA:   Vec5[T]{gain},
		YMin: yMin,
		YMax: yMax,
	}
}

// Update feeds x0 into the filter, advances the state xy and returns the new
// output. Only xy is modified.
//
// With hold set the previous output is repeated instead of computing a new
// one; the input history still advances.
func (f *IIR[T]) Update(xy *Vec5[T], x0 T, hold bool) T {
	n := len(xy)

	// xy holds           x0 x1 y0 y1 y2
	// advance time       x1 x2 y1 y2 y3
	// shift              x1 x1 x2 y1 y2
	copy(xy[1:], xy[:n-1])
	// store x0           x0 x1 x2 y1 y2
	xy[0] = x0

	var y0 T
	if hold {
		y0 = xy[n/2+1]
	} else {
		y0 = core.Macc(f.YOffset, xy[:], f.BA[:])
	}

	y0 = core.Clamp(y0, f.YMin, f.YMax)
	// store y0           x0 x1 y0 y1 y2
	xy[n/2] = y0

	return y0
}

// SetPI configures proportional-integral behavior with a gain limit.
//
// kp is the proportional gain and also sets the sign of ki and g. ki is the
// integral gain at Nyquist and g the DC gain limit; g = 0 gives an
// unlimited integrator, ki = 0 a proportional-only filter. On error the
// coefficients are left unchanged.
func (f *IIR[T]) SetPI(kp, ki, g T) error {
	eps := core.Epsilon[T]()
	ki = core.CopySign(ki, kp)
	g = core.CopySign(g, kp)

	var a1, b0, b1 T
	if core.Abs(ki) < eps {
		b0 = kp
	} else {
		c := T(1)
		if core.Abs(g) >= eps {
			c = 1 / (1 + ki/g)
		}

		a1 = 2*c - 1
		b0 = ki*c + kp
		b1 = ki*c - a1*kp

		if core.Abs(b0+b1) < eps {
			return fmt.Errorf("iir: set pi (kp=%g ki=%g g=%g): %w", kp, ki, g, ErrDegenerateGain)
		}
	}

	f.BA = Vec5[T]{b0, b1, 0, a1, 0}

	return nil
}

// K returns the DC feed-forward gain b0+b1+b2.
func (f *IIR[T]) K() T {
	return f.BA[0] + f.BA[1] + f.BA[2]
}

// XOffset returns the input-referred offset equivalent to YOffset.
func (f *IIR[T]) XOffset() (T, error) {
	k := f.K()
	if core.Abs(k) < core.Epsilon[T]() {
		return 0, ErrZeroGain
	}

	return f.YOffset / k, nil
}

// SetXOffset converts an input-referred offset (set-point) to the
// equivalent output offset and applies it.
func (f *IIR[T]) SetXOffset(xo T) {
	f.YOffset = xo * f.K()
}

// Validate reports whether the configuration can be run: every field finite
// and YMin <= YMax. Infinite limits are allowed and encode as JSON null.
func (f *IIR[T]) Validate() error {
	for i, v := range f.BA {
		if !finite(v) {
			return fmt.Errorf("iir: ba[%d]=%g: %w", i, v, ErrNotFinite)
		}
	}

	if !finite(f.YOffset) {
		return fmt.Errorf("iir: y_offset=%g: %w", f.YOffset, ErrNotFinite)
	}

	if math.IsNaN(float64(f.YMin)) || math.IsNaN(float64(f.YMax)) {
		return fmt.Errorf("iir: limits [%g, %g]: %w", f.YMin, f.YMax, ErrNotFinite)
	}

	if f.YMin > f.YMax {
		return fmt.Errorf("iir: limits [%g, %g]: %w", f.YMin, f.YMax, ErrLimits)
	}

	return nil
}

func finite[T core.Float](v T) bool {
	x := float64(v)
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
