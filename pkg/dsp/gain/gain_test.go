package gain

import (
	"math"
	"testing"
)

func TestDbConversion(t *testing.T) {
	tests := []struct {
		name    string
		linear  float64
		db      float64
		epsilon float64
	}{
		{"Unity gain", 1.0, 0.0, 0.001},
		{"Half amplitude", 0.5, -6.02, 0.01},
		{"Double amplitude", 2.0, 6.02, 0.01},
		{"Quarter amplitude", 0.25, -12.04, 0.01},
		{"Zero amplitude", 0.0, MinDB, 0.001},
		{"Negative amplitude", -1.0, MinDB, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDb := LinearToDb(tt.linear)
			if math.Abs(gotDb-tt.db) > tt.epsilon {
				t.Errorf("LinearToDb(%f) = %f, want %f", tt.linear, gotDb, tt.db)
			}

			if tt.db != MinDB {
				gotLinear := DbToLinear(tt.db)
				if math.Abs(gotLinear-math.Abs(tt.linear)) > tt.epsilon {
					t.Errorf("DbToLinear(%f) = %f, want %f", tt.db, gotLinear, math.Abs(tt.linear))
				}
			}
		})
	}
}

func TestDbToLinearFastTracksExact(t *testing.T) {
	for db := -60.0; db <= 12.0; db += 0.5 {
		exact := DbToLinear(db)
		fast := DbToLinearFast(db)
		if exact == 0 {
			continue
		}
		if math.Abs(fast-exact)/exact > 0.05 {
			t.Errorf("DbToLinearFast(%g) = %g, exact %g", db, fast, exact)
		}
	}
	if DbToLinearFast(MinDB) != 0 {
		t.Error("DbToLinearFast at MinDB should be 0")
	}
}

func TestSoftLimit(t *testing.T) {
	if v := SoftLimit(0.0); v != 0.0 {
		t.Errorf("SoftLimit(0) = %g", v)
	}
	// Odd symmetry.
	for _, x := range []float64{0.1, 0.5, 1.0, 2.0, 3.0} {
		if d := SoftLimit(x) + SoftLimit(-x); math.Abs(d) > 1e-12 {
			t.Errorf("SoftLimit not odd at %g: residual %g", x, d)
		}
	}
	// Near-linear for small inputs.
	if v := SoftLimit(0.01); math.Abs(v-0.01) > 1e-4 {
		t.Errorf("SoftLimit(0.01) = %g, want ~0.01", v)
	}
	// SoftLimit(3) = 3*36/108 = 1 exactly.
	if v := SoftLimit(3.0); math.Abs(v-1.0) > 1e-12 {
		t.Errorf("SoftLimit(3) = %g, want 1", v)
	}
}

func TestSoftClipBounds(t *testing.T) {
	for x := -10.0; x <= 10.0; x += 0.01 {
		v := SoftClip(x)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("SoftClip(%g) = %g outside [-1,1]", x, v)
		}
	}
	if SoftClip(100.0) != 1.0 || SoftClip(-100.0) != -1.0 {
		t.Error("SoftClip should saturate at the rails")
	}
}

func TestClip16(t *testing.T) {
	tests := []struct {
		in   int32
		want int16
	}{
		{0, 0},
		{32767, 32767},
		{32768, 32767},
		{-32768, -32768},
		{-40000, -32768},
		{1234, 1234},
	}
	for _, tt := range tests {
		if got := Clip16(tt.in); got != tt.want {
			t.Errorf("Clip16(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
