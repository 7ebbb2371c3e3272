package pll

import "github.com/cwbudde/algo-idsp/dsp/filter/lowpass"

// PLL1 is a phase-locked loop composed of two first-order low-pass blocks.
//
// The frequency block smooths the wrapped input increment. The phase block
// is pre-advanced by the frequency estimate each cycle and then pulled
// towards the input, so its 64-bit state keeps the fractional phase.
type PLL1 struct {
	x1 int32
	k  uint32
	lp [2]lowpass.Lowpass1
}

// NewPLL1 returns a PLL1 with gain k.
func NewPLL1(k uint32) *PLL1 {
	return &PLL1{k: k}
}

// SetGain sets the Q32 gain of both blocks. The full unsigned range up to
// just below 1.0 is usable.
func (p *PLL1) SetGain(k uint32) { p.k = k }

// Gain returns the Q32 gain.
func (p *PLL1) Gain() uint32 { return p.k }

// Update advances the loop by one sample and returns the phase and
// frequency estimates. Without ok, the input tracker and the phase block
// advance by the retained frequency.
func (p *PLL1) Update(x int32, ok bool) (phase, frequency int32) {
	var f int32
	if ok {
		f = p.lp[0].Update(x-p.x1, p.k)
		p.x1 = x
		p.lp[1].Y += int64(f) << 32

		return p.lp[1].Update(x, p.k), f
	}

	f = p.lp[0].Output()
	p.x1 += f
	p.lp[1].Y += int64(f) << 32

	return p.lp[1].Output(), f
}

// Phase returns the phase estimate.
func (p *PLL1) Phase() int32 { return p.lp[1].Output() }

// Frequency returns the frequency estimate.
func (p *PLL1) Frequency() int32 { return p.lp[0].Output() }

// Reset clears the loop state and keeps the gain.
func (p *PLL1) Reset() { *p = PLL1{k: p.k} }

// PLL2 is a phase-locked loop composed of two second-order low-pass blocks.
//
// Both blocks integrate their error into a retained rate, so a constant
// frequency is tracked without steady-state phase error. The Q32.32
// frequency estimate pre-advances the phase block every cycle.
type PLL2 struct {
	x1 int32
	k  [2]int32
	lp [2]lowpass.Lowpass2
}

// NewPLL2 returns a PLL2 configured by [PLL2.Configure].
func NewPLL2(k int32, g *int32) *PLL2 {
	p := &PLL2{}
	p.Configure(k, g)

	return p
}

// Configure sets the loop bandwidth k and the optional proportional gain
// override g, see [lowpass.Gain2]. Both are limited to the int32 range.
func (p *PLL2) Configure(k int32, g *int32) {
	p.k = lowpass.Gain2(k, g)
}

// Gains returns the integral and proportional gains.
func (p *PLL2) Gains() [2]int32 { return p.k }

// Update advances the loop by one sample and returns the phase and
// frequency estimates.
//
// Without ok, both retained rates are cleared and the input tracker and the
// phase block advance by the frequency estimate alone.
func (p *PLL2) Update(x int32, ok bool) (phase, frequency int32) {
	if ok {
		f := p.lp[0].Update(x-p.x1, p.k)
		p.x1 = x
		p.lp[1].Y += f
		y := p.lp[1].Update(x, p.k)

		return int32(y >> 32), int32(f >> 32)
	}

	p.lp[0].DY = 0
	p.lp[1].DY = 0
	p.x1 += p.lp[0].Output()
	p.lp[1].Y += p.lp[0].Y

	return p.lp[1].Output(), p.lp[0].Output()
}

// Phase returns the phase estimate.
func (p *PLL2) Phase() int32 { return p.lp[1].Output() }

// Frequency returns the frequency estimate.
func (p *PLL2) Frequency() int32 { return p.lp[0].Output() }

// Reset clears the loop state and keeps the gains.
func (p *PLL2) Reset() { *p = PLL2{k: p.k} }
