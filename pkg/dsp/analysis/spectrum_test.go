package analysis

import (
	"math"
	"testing"
)

func TestPeakBinFindsSine(t *testing.T) {
	const size = 4096
	s, err := NewSpectrum(size)
	if err != nil {
		t.Fatal(err)
	}

	// An on-bin sine peaks exactly at its bin.
	const bin = 187
	samples := make([]float32, size)
	for i := range samples {
		samples[i] = float32(math.Sin(2.0 * math.Pi * bin * float64(i) / size))
	}

	mags, err := s.Magnitudes(samples)
	if err != nil {
		t.Fatal(err)
	}
	if got := PeakBin(mags); got != bin {
		t.Errorf("peak at bin %d, want %d", got, bin)
	}
}

func TestMagnitudesRejectsShortBlock(t *testing.T) {
	s, err := NewSpectrum(1024)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Magnitudes(make([]float32, 512)); err == nil {
		t.Error("expected an error for a short block")
	}
}

func TestHarmonicResidualIgnoresHarmonics(t *testing.T) {
	const size = 4096
	s, err := NewSpectrum(size)
	if err != nil {
		t.Fatal(err)
	}

	// Fundamental plus third harmonic, both on-bin: the residual away
	// from multiples of the fundamental should be tiny next to the
	// harmonic energy itself.
	const bin = 128
	samples := make([]float32, size)
	for i := range samples {
		ph := 2.0 * math.Pi * float64(i) / size
		samples[i] = float32(math.Sin(bin*ph) + 0.3*math.Sin(3*bin*ph))
	}

	mags, err := s.Magnitudes(samples)
	if err != nil {
		t.Fatal(err)
	}

	harmonic := BandEnergy(mags, bin-2, bin+3) + BandEnergy(mags, 3*bin-2, 3*bin+3)
	residual := HarmonicResidual(mags, bin, 2)
	if residual > harmonic*1e-6 {
		t.Errorf("residual %g not negligible next to harmonic energy %g", residual, harmonic)
	}
}
