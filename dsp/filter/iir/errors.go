package iir

import "errors"

var (
	// ErrDegenerateGain is returned by SetPI when the synthesized controller
	// has no usable DC feed-forward gain.
	ErrDegenerateGain = errors.New("iir: low integrator gain and/or gain limit")
	// ErrZeroGain is returned when an input-referred offset is requested from
	// a filter whose DC gain is zero.
	ErrZeroGain = errors.New("iir: DC gain is zero")
	// ErrLimits reports y_min > y_max.
	ErrLimits = errors.New("iir: output limits inverted")
	// ErrNotFinite reports a NaN or infinite coefficient or offset.
	ErrNotFinite = errors.New("iir: value not finite")
)
