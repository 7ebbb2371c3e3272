package phase

import "math"

// Scale is the number of LSBs per radian: 2^31/pi.
const Scale = (1 << 31) / math.Pi

// Quarter is pi/2 in phase units.
const Quarter int32 = 1 << 30

// FromRadians converts an angle in radians to wrapped phase, rounding to the
// nearest LSB. Angles outside [-pi, pi) wrap.
func FromRadians(rad float64) int32 {
	return fromUnits(math.Remainder(rad, 2*math.Pi) * Scale)
}

// ToRadians converts a wrapped phase to radians in [-pi, pi).
func ToRadians(p int32) float64 {
	return float64(p) / Scale
}

// FromTurns converts a fraction of a full period to wrapped phase.
func FromTurns(turns float64) int32 {
	return fromUnits(math.Remainder(turns, 1) * (1 << 32))
}

// ToTurns converts a wrapped phase to a fraction of a period in [-0.5, 0.5).
func ToTurns(p int32) float64 {
	return float64(p) / (1 << 32)
}

// FromHz converts a frequency to a phase increment per sample. Frequencies
// above the Nyquist rate alias into the first Nyquist zone.
func FromHz(freqHz, sampleRate float64) int32 {
	if sampleRate <= 0 {
		return 0
	}

	return FromTurns(freqHz / sampleRate)
}

// ToHz converts a phase increment per sample to a frequency in Hz.
func ToHz(f int32, sampleRate float64) float64 {
	return ToTurns(f) * sampleRate
}

// Diff returns the wrapped difference a-b, the shortest signed distance from
// b to a.
func Diff(a, b int32) int32 {
	return a - b
}

// Abs returns the magnitude of a wrapped phase error as an unsigned value so
// that -pi does not overflow.
func Abs(p int32) uint32 {
	if p < 0 {
		return -uint32(p)
	}

	return uint32(p)
}

func fromUnits(x float64) int32 {
	// Conversion through int64 keeps +pi (2^31) representable before the
	// truncation to 32 bits wraps it onto -pi.
	return int32(int64(math.Round(x)))
}
