package blep

import (
	"math"
	"testing"
)

func TestStepSampleBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		at   float64
		want float64
	}{
		{"this at 0", ThisSample, 0.0, 0.0},
		{"this at 1", ThisSample, 1.0, 0.5},
		{"next at 0", NextSample, 0.0, 0.5},
		{"next at 1", NextSample, 1.0, 0.0},
		{"this integrated at 0", ThisIntegratedSample, 0.0, 0.0},
		{"next integrated at 1", NextIntegratedSample, 1.0, 0.0},
		{"next integrated at 0", NextIntegratedSample, 0.0, 0.1875},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(tt.at)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("got %g, want %g", got, tt.want)
			}
		})
	}
}

// A step correction must split symmetrically between the two affected
// samples: the part owed now for a transition at t equals the part owed
// next for a transition at 1-t.
func TestStepCorrectionSymmetry(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100.0

		if d := ThisSample(x) - NextSample(1.0-x); math.Abs(d) > 1e-12 {
			t.Fatalf("step symmetry broken at t=%g: diff %g", x, d)
		}
		if d := ThisIntegratedSample(x) - NextIntegratedSample(1.0-x); math.Abs(d) > 1e-12 {
			t.Fatalf("ramp symmetry broken at t=%g: diff %g", x, d)
		}
	}
}

// Summed across the two affected samples, the correction for a unit
// step cancels the naive step's aliased residual: the total is the
// smooth polynomial 0.5*(t^2 + (1-t)^2), maximal when the transition
// lands on a sample boundary and minimal mid-sample.
func TestStepCorrectionTotal(t *testing.T) {
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100.0
		total := ThisSample(x) + NextSample(x)
		want := 0.5 * (x*x + (1.0-x)*(1.0-x))
		if math.Abs(total-want) > 1e-12 {
			t.Fatalf("total correction at t=%g: got %g, want %g", x, total, want)
		}
		if total < 0.25-1e-12 || total > 0.5+1e-12 {
			t.Fatalf("total correction at t=%g out of range: %g", x, total)
		}
	}
}
