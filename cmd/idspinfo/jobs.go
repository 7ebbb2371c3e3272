package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-idsp/dsp/filter/iir"
	"github.com/cwbudde/algo-idsp/dsp/filter/lowpass"
	"github.com/cwbudde/algo-idsp/dsp/phase"
	"github.com/cwbudde/algo-idsp/dsp/pll"
	"github.com/cwbudde/algo-idsp/dsp/trig"
	"github.com/cwbudde/algo-idsp/measure/lock"
	"github.com/cwbudde/algo-idsp/measure/spur"
)

const (
	lockFrequency int32 = 0x71f63049
	lockPhaseStep int32 = 1 << 20
	lockDropout         = 100

	// cosSinAmplitude is the mean output amplitude of trig.CosSin.
	cosSinAmplitude = float64(1<<31) - 0.85*(1<<15)
)

type benchCase struct {
	name string
	fn   func(b *testing.B)
}

var benchCases = []benchCase{
	{"trig.CosSin", func(b *testing.B) {
		var p, acc int32
		for b.Loop() {
			c, s := trig.CosSin(p)
			acc ^= c ^ s
			p += 0x3243f6a9
		}
		_ = acc
	}},
	{"trig.Atan2", func(b *testing.B) {
		y, x := int32(0x12345678), int32(-0x2345678)
		for b.Loop() {
			y ^= trig.Atan2(y, x)
		}
	}},
	{"iir.IIR.Update", func(b *testing.B) {
		f := iir.New(0.5, -1.0, 1.0)
		if err := f.SetPI(0.5, 0.1, 10); err != nil {
			b.Fatal(err)
		}
		var xy iir.Vec5[float64]
		for b.Loop() {
			f.Update(&xy, 0.25, false)
		}
	}},
	{"lowpass.Lowpass2", func(b *testing.B) {
		var l lowpass.Lowpass2
		k := lowpass.Gain2(1<<26, nil)
		var x int32
		for b.Loop() {
			x += lockFrequency
			l.Update(x, k)
		}
	}},
	{"pll.PLL", func(b *testing.B) {
		var p pll.PLL
		var x int32
		for b.Loop() {
			x += lockFrequency
			p.Update(x, true, 12, 11)
		}
	}},
	{"pll.PLL1", func(b *testing.B) {
		p := pll.NewPLL1(1 << 24)
		var x int32
		for b.Loop() {
			x += lockFrequency
			p.Update(x, true)
		}
	}},
	{"pll.PLL2", func(b *testing.B) {
		p := pll.NewPLL2(1<<24, nil)
		var x int32
		for b.Loop() {
			x += lockFrequency
			p.Update(x, true)
		}
	}},
	{"pll.NoiseShaped", func(b *testing.B) {
		var n pll.NoiseShaped
		var x int32
		for b.Loop() {
			x += lockFrequency
			n.Update(x, true, 1<<24)
		}
	}},
}

func benchReport() report {
	return report{name: "bench", run: func(ctx context.Context) (table, error) {
		t := table{title: "Kernel benchmarks", header: []string{"Kernel", "ns/op", "Iterations"}}

		for _, c := range benchCases {
			if err := ctx.Err(); err != nil {
				return table{}, err
			}

			r := testing.Benchmark(c.fn)
			if r.N == 0 {
				return table{}, fmt.Errorf("benchmark %s failed", c.name)
			}

			ns := float64(r.T.Nanoseconds()) / float64(r.N)
			t.rows = append(t.rows, []string{c.name, strconv.FormatFloat(ns, 'f', 2, 64), strconv.Itoa(r.N)})
		}

		return t, nil
	}}
}

// sweepStats is the error of trig.CosSin against the ideal unit phasor over
// an evenly spaced sweep of one turn.
type sweepStats struct {
	mean  [2]float64 // DC content
	demod [2]float64 // coherent demodulation error
	rms   [2]float64
	max   [2]float64
}

func cosSinSweep(ctx context.Context, bits int) (sweepStats, error) {
	if bits < 4 || bits > 26 {
		return sweepStats{}, fmt.Errorf("sweep bits %d outside [4, 26]", bits)
	}

	var st sweepStats
	n := 1 << bits

	for i := range n {
		if i&0xffff == 0 {
			if err := ctx.Err(); err != nil {
				return sweepStats{}, err
			}
		}

		p := int32(uint32(i) << (32 - bits))
		c, s := trig.CosSin(p)
		cf, sf := float64(c)/cosSinAmplitude, float64(s)/cosSinAmplitude

		ws, wc := math.Sincos(phase.ToRadians(p))

		st.mean[0] += cf
		st.mean[1] += sf
		st.demod[0] += cf*wc + sf*ws - 1
		st.demod[1] += sf*wc - cf*ws

		ec, es := cf-wc, sf-ws
		st.rms[0] += ec * ec
		st.rms[1] += es * es
		st.max[0] = math.Max(st.max[0], math.Abs(ec))
		st.max[1] = math.Max(st.max[1], math.Abs(es))
	}

	for k := range 2 {
		st.mean[k] /= float64(n)
		st.demod[k] /= float64(n)
		st.rms[k] = math.Sqrt(st.rms[k] / float64(n))
	}

	return st, nil
}

func cosSinAccuracyReport(bits int) report {
	return report{name: "cossin accuracy", run: func(ctx context.Context) (table, error) {
		st, err := cosSinSweep(ctx, bits)
		if err != nil {
			return table{}, err
		}

		t := table{
			title:  fmt.Sprintf("CosSin accuracy (2^%d phases)", bits),
			header: []string{"Component", "Mean", "Demod", "RMS", "Max"},
		}

		for k, name := range []string{"cos", "sin"} {
			t.rows = append(t.rows, []string{
				name,
				strconv.FormatFloat(st.mean[k], 'e', 2, 64),
				strconv.FormatFloat(st.demod[k], 'e', 2, 64),
				strconv.FormatFloat(st.rms[k], 'e', 2, 64),
				strconv.FormatFloat(st.max[k], 'e', 2, 64),
			})
		}

		return t, nil
	}}
}

func cosSinPurityReport() report {
	return report{name: "cossin purity", run: func(ctx context.Context) (table, error) {
		t := table{title: "CosSin spectral purity", header: []string{"Samples", "Bin", "SFDR [dB]", "SINAD [dB]", "Spur bin"}}

		for _, tone := range []struct{ n, bin int }{{4096, 67}, {16384, 1001}} {
			if err := ctx.Err(); err != nil {
				return table{}, err
			}

			step := int32(uint32(uint64(tone.bin)<<32/uint64(tone.n)))

			res, err := spur.Analyze(spur.CosSin(tone.n, step), spur.Config{})
			if err != nil {
				return table{}, err
			}

			t.rows = append(t.rows, []string{
				strconv.Itoa(tone.n),
				strconv.Itoa(res.FundamentalBin),
				strconv.FormatFloat(res.SFDR, 'f', 1, 64),
				strconv.FormatFloat(res.SINAD, 'f', 1, 64),
				strconv.Itoa(res.SpurBin),
			})
		}

		return t, nil
	}}
}

func lockReport(cycles int) report {
	return report{name: "pll lock", run: func(ctx context.Context) (table, error) {
		t := table{
			title:  fmt.Sprintf("PLL lock (%d samples, phase step at %d, %d missing at %d)", cycles, cycles/2, lockDropout, cycles*3/4),
			header: []string{"Variant", "Settle", "RMS phase [LSB]", "Max phase [LSB]", "Dropout max [LSB]"},
		}

		for _, v := range pll.Variants() {
			if err := ctx.Err(); err != nil {
				return table{}, err
			}

			tr, err := pll.New(v)
			if err != nil {
				return table{}, err
			}

			res, err := lock.Step(tr, lock.StepConfig{
				Frequency:  lockFrequency,
				Cycles:     cycles,
				PhaseStep:  lockPhaseStep,
				StepAt:     cycles / 2,
				DropoutAt:  cycles * 3 / 4,
				DropoutLen: lockDropout,
			})
			if err != nil {
				return table{}, err
			}

			settle := "-"
			if res.Settle >= 0 {
				settle = strconv.Itoa(res.Settle)
			}

			t.rows = append(t.rows, []string{
				v.String(),
				settle,
				strconv.FormatFloat(res.RMSPhase, 'f', 2, 64),
				strconv.FormatUint(uint64(res.MaxPhase), 10),
				strconv.FormatUint(uint64(res.DropoutPhase), 10),
			})
		}

		return t, nil
	}}
}
