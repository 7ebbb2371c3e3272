package pll

const (
	// MinShift is the smallest supported shift.
	MinShift = 1
	// MaxShift is the largest supported shift.
	MaxShift = 30
)

// PLL is a type-II phase-locked loop with power-of-two gains.
//
// The only error source is the truncation of the shifted-out bits. At low
// gain it shows as a static phase offset of a few LSB. The settling time
// for a phase or frequency step is about 1<<shift updates.
type PLL struct {
	x int32 // last input
	f int32 // frequency
	y int32 // phase
}

// Update advances the loop by one sample and returns the phase and
// frequency estimates.
//
// With ok set, the frequency error is the wrapped increment x-x1 minus the
// current frequency, divided by 1<<shiftFrequency with rounding half up.
// The frequency estimate is the midpoint f-df/2 and the phase advances by
// it. The phase error x-y is divided by 1<<shiftPhase the same way. The
// returned phase is the midpoint y-dy/2 and the returned frequency carries
// dy.
//
// Without ok, the input tracker and the phase advance by the retained
// frequency and the loop state is returned.
func (p *PLL) Update(x int32, ok bool, shiftFrequency, shiftPhase uint) (phase, frequency int32) {
	checkShifts(shiftFrequency, shiftPhase)

	if !ok {
		p.x += p.f
		p.y += p.f

		return p.y, p.f
	}

	df := (int32(1)<<(shiftFrequency-1) + x - p.x - p.f) >> shiftFrequency
	p.x = x
	p.f += df
	f := p.f - df>>1
	p.y += f

	dy := (int32(1)<<(shiftPhase-1) + x - p.y) >> shiftPhase
	p.y += dy
	y := p.y - dy>>1

	return y, f + dy
}

// Phase returns the phase state.
func (p *PLL) Phase() int32 { return p.y }

// Frequency returns the frequency state.
func (p *PLL) Frequency() int32 { return p.f }

// Reset clears the loop state.
func (p *PLL) Reset() { *p = PLL{} }

func validShift(s uint) bool {
	return s >= MinShift && s <= MaxShift
}
