// Package gain provides amplitude and gain-related DSP operations.
package gain

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// MinDB is the minimum dB value (effectively -infinity)
const MinDB = -200.0

// ln(10)/20, for the dB-to-amplitude exponent.
const dbToLinearExponent = 0.11512925464970229

// LinearToDb converts a linear amplitude value to decibels.
// Returns MinDB for values <= 0.
func LinearToDb(linear float64) float64 {
	if linear <= 0 {
		return MinDB
	}
	return 20.0 * math.Log10(linear)
}

// DbToLinear converts a decibel value to linear amplitude.
// Values <= MinDB return 0.
func DbToLinear(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return math.Pow(10.0, db/20.0)
}

// DbToLinearFast approximates DbToLinear for the voice processing
// path, where the conversion runs once per voice per sample on a
// smoothed gain value.
func DbToLinearFast(db float64) float64 {
	if db <= MinDB {
		return 0
	}
	return approx.FastExp(db * dbToLinearExponent)
}

// SoftLimit applies a cubic soft limiter. Accurate for |x| below ~3,
// beyond which the curve keeps growing slowly; use SoftClip when a
// hard bound is required.
func SoftLimit(x float64) float64 {
	return x * (27.0 + x*x) / (27.0 + 9.0*x*x)
}

// SoftClip saturates to [-1, 1], following SoftLimit inside the knee.
func SoftClip(x float64) float64 {
	if x < -3.0 {
		return -1.0
	}
	if x > 3.0 {
		return 1.0
	}
	return SoftLimit(x)
}

// Clip16 clamps to the signed 16-bit range.
func Clip16(x int32) int16 {
	if x < -32768 {
		return -32768
	}
	if x > 32767 {
		return 32767
	}
	return int16(x)
}
