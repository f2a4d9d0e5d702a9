package filter

import (
	"math"
	"testing"
)

func TestBoundedOutputForBoundedInput(t *testing.T) {
	tests := []struct {
		name      string
		freq      float64
		resonance float64
	}{
		{"mid cutoff low q", 0.1, 0.5},
		{"mid cutoff high q", 0.1, 100.0},
		{"near nyquist", 0.497, 1.0},
		{"above nyquist clamped", 0.9, 1.0},
		{"low cutoff tiny q", 0.001, 0.01},
		{"high q near nyquist", 0.45, 50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{LowPass, BandPass, HighPass} {
				f := New(mode)
				f.SetFrequencyAndQ(tt.freq, tt.resonance)

				// Unit-amplitude square-ish excitation for 10k samples.
				for i := 0; i < 10000; i++ {
					in := 1.0
					if i%7 < 3 {
						in = -1.0
					}
					out := f.Process(in)
					if math.IsNaN(out) || math.IsInf(out, 0) {
						t.Fatalf("mode %d sample %d: output not finite", mode, i)
					}
					if math.Abs(out) > 1000.0 {
						t.Fatalf("mode %d sample %d: runaway output %g", mode, i, out)
					}
				}
			}
		})
	}
}

func TestLowpassPassesDC(t *testing.T) {
	f := New(LowPass)
	f.SetFrequencyAndQ(0.1, 0.707)

	var out float64
	for i := 0; i < 5000; i++ {
		out = f.Process(1.0)
	}
	if math.Abs(out-1.0) > 0.01 {
		t.Errorf("lowpass DC gain: got %g, want ~1", out)
	}
}

func TestHighpassBlocksDC(t *testing.T) {
	f := New(HighPass)
	f.SetFrequencyAndQ(0.1, 0.707)

	var out float64
	for i := 0; i < 5000; i++ {
		out = f.Process(1.0)
	}
	if math.Abs(out) > 0.01 {
		t.Errorf("highpass DC leak: got %g, want ~0", out)
	}
}

func TestCoefficientClampNearNyquist(t *testing.T) {
	f := New(LowPass)
	f.SetFrequencyAndQ(10.0, 1.0)
	if math.IsInf(f.g, 0) || math.IsNaN(f.g) || f.g < 0 {
		t.Fatalf("g not clamped: %g", f.g)
	}
	limit := math.Tan(0.497 * math.Pi)
	if f.g > limit+1e-9 {
		t.Errorf("g exceeds stability bound: %g > %g", f.g, limit)
	}
}

func TestModeSelection(t *testing.T) {
	// With identical input and coefficients, the three modes report
	// the three distinct outputs of one shared update.
	lp := New(LowPass)
	bp := New(BandPass)
	hp := New(HighPass)
	for _, f := range []*SVF{lp, bp, hp} {
		f.SetFrequencyAndQ(0.2, 1.0)
	}

	var sawDifference bool
	for i := 0; i < 64; i++ {
		in := math.Sin(2 * math.Pi * float64(i) / 16.0)
		l := lp.Process(in)
		b := bp.Process(in)
		h := hp.Process(in)
		if l != b || b != h {
			sawDifference = true
		}
	}
	if !sawDifference {
		t.Error("modes never diverged")
	}
}

func TestResetClearsState(t *testing.T) {
	f := New(LowPass)
	f.SetFrequencyAndQ(0.1, 1.0)
	for i := 0; i < 100; i++ {
		f.Process(1.0)
	}
	f.Reset()
	if out := f.Process(0.0); out != 0.0 {
		t.Errorf("output after reset with zero input: %g", out)
	}
}
