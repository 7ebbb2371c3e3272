package lock

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-idsp/dsp/phase"
	"github.com/cwbudde/algo-idsp/dsp/pll"
	"github.com/cwbudde/algo-vecmath"
)

// StepConfig describes the stimulus.
type StepConfig struct {
	// Frequency is the phase increment per sample.
	Frequency int32
	// Cycles is the number of samples.
	Cycles int
	// PhaseStep is added to the input from sample StepAt on.
	PhaseStep int32
	StepAt    int
	// DropoutLen samples starting at DropoutAt are missing.
	DropoutAt  int
	DropoutLen int
	// PhaseTol and FrequencyTol bound the errors of a settled loop.
	// Zero selects 1 LSB.
	PhaseTol     uint32
	FrequencyTol uint32
}

// Result holds the loop response.
type Result struct {
	// Settle is the first sample from which phase and frequency errors stay
	// within tolerance to the end of the run, or -1.
	Settle int
	// RMSPhase is the RMS phase error in LSB over the final quarter.
	RMSPhase float64
	// MaxPhase is the largest phase error after Settle, in LSB.
	MaxPhase uint32
	// DropoutPhase is the largest phase error during the dropout, in LSB.
	DropoutPhase uint32
}

// Step drives tr with the stimulus of cfg.
func Step(tr pll.Tracker, cfg StepConfig) (Result, error) {
	if cfg.Cycles < 4 {
		return Result{}, fmt.Errorf("lock: %d cycles: need at least 4", cfg.Cycles)
	}

	phaseTol, freqTol := cfg.PhaseTol, cfg.FrequencyTol
	if phaseTol == 0 {
		phaseTol = 1
	}

	if freqTol == 0 {
		freqTol = 1
	}

	phaseErr := make([]float64, cfg.Cycles)
	absErr := make([]uint32, cfg.Cycles)
	res := Result{Settle: 0}

	var x int32
	for i := range cfg.Cycles {
		x += cfg.Frequency

		in := x
		if cfg.PhaseStep != 0 && i >= cfg.StepAt {
			in += cfg.PhaseStep
		}

		missing := i >= cfg.DropoutAt && i < cfg.DropoutAt+cfg.DropoutLen
		tr.Track(in, !missing)

		ep := phase.Diff(tr.Phase(), in)
		ef := phase.Diff(tr.Frequency(), cfg.Frequency)
		phaseErr[i] = float64(ep)
		absErr[i] = phase.Abs(ep)

		if absErr[i] > phaseTol || phase.Abs(ef) > freqTol {
			res.Settle = i + 1
		}

		if missing {
			res.DropoutPhase = max(res.DropoutPhase, absErr[i])
		}
	}

	if res.Settle >= cfg.Cycles {
		res.Settle = -1
	} else {
		for _, e := range absErr[res.Settle:] {
			res.MaxPhase = max(res.MaxPhase, e)
		}
	}

	tail := phaseErr[cfg.Cycles-cfg.Cycles/4:]
	res.RMSPhase = math.Sqrt(vecmath.DotProduct(tail, tail) / float64(len(tail)))

	return res, nil
}
