package pll

import (
	"fmt"
	"math"
)

const (
	defaultShiftFrequency = 10
	defaultShiftPhase     = 9
	defaultGain           = 1 << 26
)

// Tracker is the contract shared by the loops: one optional phase sample in
// per update, phase and frequency estimates out.
type Tracker interface {
	Track(x int32, ok bool)
	Phase() int32
	Frequency() int32
}

// Variant selects a [Tracker] implementation.
type Variant int

const (
	// VariantShift is [PLL] driven by [ShiftLoop].
	VariantShift Variant = iota + 1
	// VariantPLL1 is [PLL1].
	VariantPLL1
	// VariantPLL2 is [PLL2].
	VariantPLL2
	// VariantNoiseShaped is [NoiseShaped] driven by [GainLoop].
	VariantNoiseShaped
)

// Variants lists every selectable variant.
func Variants() []Variant {
	return []Variant{VariantShift, VariantPLL1, VariantPLL2, VariantNoiseShaped}
}

func (v Variant) String() string {
	switch v {
	case VariantShift:
		return "shift"
	case VariantPLL1:
		return "pll1"
	case VariantPLL2:
		return "pll2"
	case VariantNoiseShaped:
		return "noise_shaped"
	default:
		return "unknown"
	}
}

// ParseVariant returns the variant named by s as printed by String.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == s {
			return v, nil
		}
	}

	return 0, fmt.Errorf("pll: %q: %w", s, ErrVariant)
}

func validVariant(v Variant) bool {
	return v >= VariantShift && v <= VariantNoiseShaped
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	shiftFrequency uint
	shiftPhase     uint
	gain           uint32
	damping        *int32
}

func defaultConfig() config {
	return config{
		shiftFrequency: defaultShiftFrequency,
		shiftPhase:     defaultShiftPhase,
		gain:           defaultGain,
	}
}

// WithShifts sets the frequency and phase shifts of [VariantShift], each
// in [MinShift, MaxShift]. Default (10, 9).
func WithShifts(shiftFrequency, shiftPhase uint) Option {
	return func(cfg *config) error {
		if !validShift(shiftFrequency) || !validShift(shiftPhase) {
			return fmt.Errorf("pll: shifts (%d, %d): %w", shiftFrequency, shiftPhase, ErrShiftRange)
		}

		cfg.shiftFrequency = shiftFrequency
		cfg.shiftPhase = shiftPhase

		return nil
	}
}

// WithGain sets the Q32 gain of the multiplicative variants. Default 1<<26.
// [VariantPLL1] accepts the full unsigned range; [VariantPLL2] and
// [VariantNoiseShaped] keep signed gains and reject k above MaxInt32.
func WithGain(k uint32) Option {
	return func(cfg *config) error {
		if k == 0 {
			return fmt.Errorf("pll: gain %d: %w", k, ErrGain)
		}

		cfg.gain = k

		return nil
	}
}

// WithDamping overrides the proportional gain of [VariantPLL2].
func WithDamping(g int32) Option {
	return func(cfg *config) error {
		if g <= 0 {
			return fmt.Errorf("pll: damping gain %d: %w", g, ErrGain)
		}

		cfg.damping = &g

		return nil
	}
}

// New returns a [Tracker] of variant v. Options that do not apply to v are
// validated and ignored.
func New(v Variant, opts ...Option) (Tracker, error) {
	if !validVariant(v) {
		return nil, fmt.Errorf("pll: variant %d: %w", v, ErrVariant)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if v != VariantPLL1 && v != VariantShift && cfg.gain > math.MaxInt32 {
		return nil, fmt.Errorf("pll: %v gain %d: %w", v, cfg.gain, ErrGain)
	}

	switch v {
	case VariantShift:
		return &ShiftLoop{ShiftFrequency: cfg.shiftFrequency, ShiftPhase: cfg.shiftPhase}, nil
	case VariantPLL1:
		return NewPLL1(cfg.gain), nil
	case VariantPLL2:
		return NewPLL2(int32(cfg.gain), cfg.damping), nil
	default:
		return &GainLoop{K: int32(cfg.gain)}, nil
	}
}

// ShiftLoop binds a [PLL] to fixed shifts.
type ShiftLoop struct {
	PLL

	ShiftFrequency uint
	ShiftPhase     uint

	phase, frequency int32
}

// Track implements [Tracker].
func (s *ShiftLoop) Track(x int32, ok bool) {
	s.phase, s.frequency = s.Update(x, ok, s.ShiftFrequency, s.ShiftPhase)
}

// Phase returns the last phase estimate.
func (s *ShiftLoop) Phase() int32 { return s.phase }

// Frequency returns the last frequency estimate.
func (s *ShiftLoop) Frequency() int32 { return s.frequency }

// GainLoop binds a [NoiseShaped] loop to a fixed gain.
type GainLoop struct {
	NoiseShaped

	K int32
}

// Track implements [Tracker].
func (g *GainLoop) Track(x int32, ok bool) {
	g.Update(x, ok, g.K)
}

// Track implements [Tracker].
func (p *PLL1) Track(x int32, ok bool) { p.Update(x, ok) }

// Track implements [Tracker].
func (p *PLL2) Track(x int32, ok bool) { p.Update(x, ok) }

var (
	_ Tracker = (*ShiftLoop)(nil)
	_ Tracker = (*PLL1)(nil)
	_ Tracker = (*PLL2)(nil)
	_ Tracker = (*GainLoop)(nil)
)
