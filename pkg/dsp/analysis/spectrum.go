// Package analysis provides offline spectrum measurement used to
// verify synthesis output. Not part of the real-time path.
package analysis

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum computes Hann-windowed magnitude spectra of fixed-size
// blocks. Buffers are reused between calls.
type Spectrum struct {
	size   int
	plan   *algofft.Plan[complex128]
	window []float64

	in   []complex128
	out  []complex128
	re   []float64
	im   []float64
	mags []float64
}

// NewSpectrum creates an analyzer for blocks of the given power-of-two
// size.
func NewSpectrum(size int) (*Spectrum, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum fft plan: %w", err)
	}

	window := make([]float64, size)
	for i := range window {
		window[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/float64(size)))
	}

	return &Spectrum{
		size:   size,
		plan:   plan,
		window: window,
		in:     make([]complex128, size),
		out:    make([]complex128, size),
		re:     make([]float64, size/2+1),
		im:     make([]float64, size/2+1),
		mags:   make([]float64, size/2+1),
	}, nil
}

// Size returns the block size the analyzer was planned for.
func (s *Spectrum) Size() int {
	return s.size
}

// Magnitudes windows one block and returns the magnitude of each bin
// up to and including Nyquist. The returned slice is reused by the
// next call.
func (s *Spectrum) Magnitudes(samples []float32) ([]float64, error) {
	if len(samples) < s.size {
		return nil, fmt.Errorf("spectrum block: have %d samples, need %d", len(samples), s.size)
	}

	for i := 0; i < s.size; i++ {
		s.in[i] = complex(float64(samples[i])*s.window[i], 0)
	}

	if err := s.plan.Forward(s.out, s.in); err != nil {
		return nil, fmt.Errorf("spectrum fft: %w", err)
	}

	for i := range s.re {
		s.re[i] = real(s.out[i])
		s.im[i] = imag(s.out[i])
	}
	vecmath.Magnitude(s.mags, s.re, s.im)

	return s.mags, nil
}

// PeakBin returns the bin with the largest magnitude.
func PeakBin(mags []float64) int {
	peak := 0
	for i, m := range mags {
		if m > mags[peak] {
			peak = i
		}
	}
	return peak
}

// BandEnergy sums squared magnitudes over [lo, hi) bins.
func BandEnergy(mags []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(mags) {
		hi = len(mags)
	}
	var sum float64
	for i := lo; i < hi; i++ {
		sum += mags[i] * mags[i]
	}
	return sum
}

// HarmonicResidual sums squared magnitudes of every bin further than
// guard bins from any integer multiple of fundamentalBin. With a Hann
// window and an on-bin fundamental this isolates aliased energy.
func HarmonicResidual(mags []float64, fundamentalBin, guard int) float64 {
	var sum float64
	for i := guard + 1; i < len(mags); i++ {
		nearest := ((i + fundamentalBin/2) / fundamentalBin) * fundamentalBin
		if abs(i-nearest) <= guard {
			continue
		}
		sum += mags[i] * mags[i]
	}
	return sum
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
