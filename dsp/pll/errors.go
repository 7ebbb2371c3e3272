package pll

import "errors"

var (
	// ErrShiftRange reports a shift outside [MinShift, MaxShift].
	ErrShiftRange = errors.New("pll: shift out of range")
	// ErrGain reports a non-positive loop gain.
	ErrGain = errors.New("pll: gain must be positive")
	// ErrVariant reports an unknown or unset variant.
	ErrVariant = errors.New("pll: invalid variant")
)
