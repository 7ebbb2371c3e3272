package spur

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-idsp/dsp/window"
)

var (
	// ErrEmpty reports a signal too short to analyze.
	ErrEmpty = errors.New("spur: signal too short")
	// ErrFFTSize reports an FFT size that is not a power of two or is
	// shorter than the signal.
	ErrFFTSize = errors.New("spur: invalid FFT size")
	// ErrFundamental reports a fundamental bin inside the DC region or
	// beyond Nyquist.
	ErrFundamental = errors.New("spur: fundamental bin out of range")
)

// Config holds analysis parameters. The zero value is usable.
type Config struct {
	// FFTSize is the transform length. Zero selects the next power of two
	// of the signal length; the signal is zero padded to it.
	FFTSize int
	// CaptureBins is the half width in bins of the region attributed to
	// the fundamental and to DC. Zero selects the window main lobe.
	CaptureBins int
	// FundamentalBin fixes the fundamental. Zero searches for the largest
	// bin above the DC region.
	FundamentalBin int
	// Window is the analysis window. The zero value (rectangular) selects
	// the 4-term Blackman-Harris window.
	Window window.Type
}

// Result holds the analysis of one signal.
type Result struct {
	FundamentalBin int
	// SpurBin is the largest bin outside the fundamental and DC regions.
	SpurBin int
	// SFDR is the ratio of the fundamental peak to the largest spur in dB.
	SFDR float64
	// SINAD is the ratio of the fundamental energy to everything outside
	// the fundamental and DC regions in dB.
	SINAD float64
}

// Analyze computes the spectral purity of signal.
func Analyze(signal []float64, cfg Config) (Result, error) {
	fftSize := cfg.FFTSize
	if fftSize == 0 {
		fftSize = nextPowerOf2(len(signal))
	}

	if fftSize < len(signal) || fftSize&(fftSize-1) != 0 {
		return Result{}, fmt.Errorf("spur: size %d for %d samples: %w", fftSize, len(signal), ErrFFTSize)
	}

	winType := cfg.Window
	if winType == window.TypeRectangular {
		winType = window.TypeBlackmanHarris4Term
	}

	capture := cfg.CaptureBins
	if capture <= 0 {
		capture = window.Info(winType).MainLobeBins
	}

	bins := fftSize/2 + 1
	if len(signal) == 0 || bins <= 3*capture+2 {
		return Result{}, fmt.Errorf("spur: %d samples: %w", len(signal), ErrEmpty)
	}

	power, err := powerSpectrum(signal, fftSize, winType)
	if err != nil {
		return Result{}, err
	}

	fund := cfg.FundamentalBin
	if fund <= 0 {
		fund = argmax(power, capture+1, bins)
	}

	if fund <= capture || fund >= bins {
		return Result{}, fmt.Errorf("spur: bin %d: %w", fund, ErrFundamental)
	}

	lo, hi := max(fund-capture, capture+1), min(fund+capture, bins-1)

	var fundEnergy, rest float64
	spur := -1
	for i := capture + 1; i < bins; i++ {
		if i >= lo && i <= hi {
			fundEnergy += power[i]
			continue
		}

		rest += power[i]
		if spur < 0 || power[i] > power[spur] {
			spur = i
		}
	}

	res := Result{
		FundamentalBin: fund,
		SpurBin:        spur,
		SFDR:           math.Inf(1),
		SINAD:          math.Inf(1),
	}

	if spur >= 0 && power[spur] > 0 {
		res.SFDR = powerToDB(power[fund] / power[spur])
	}

	if rest > 0 {
		res.SINAD = powerToDB(fundEnergy / rest)
	}

	return res, nil
}

// powerSpectrum returns the bin powers [0..Nyquist] of the windowed,
// zero-padded signal.
func powerSpectrum(signal []float64, fftSize int, winType window.Type) ([]float64, error) {
	windowed := make([]float64, len(signal))
	vecmath.MulBlock(windowed, signal, window.Generate(winType, len(signal), window.WithPeriodic()))

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spur: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("spur: fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := range bins {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	return power, nil
}

func argmax(v []float64, lo, hi int) int {
	best := lo
	for i := lo + 1; i < hi; i++ {
		if v[i] > v[best] {
			best = i
		}
	}

	return best
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}

func powerToDB(r float64) float64 {
	return 10 * math.Log10(r)
}
