package modulator

import "math"

const (
	foldTableSize   = 4096
	foldTableCenter = foldTableSize / 2
)

// foldTable is a bipolar sine folder over [-8, 8]: linear through the
// center, wrapping back on itself past unity drive. One guard entry at
// the end keeps the interpolation in bounds.
var foldTable [foldTableSize + 1]float64

func init() {
	for i := range foldTable {
		x := (float64(i)/foldTableSize*2.0 - 1.0) * 8.0
		foldTable[i] = math.Sin(x * math.Pi / 2.0)
	}
}

// foldLookup reads the fold table at a signed offset from its center,
// with linear interpolation. Offsets beyond the table edges clamp.
func foldLookup(offset float64) float64 {
	position := foldTableCenter + offset
	if position < 0.0 {
		position = 0.0
	}
	if position > foldTableSize-1 {
		position = foldTableSize - 1
	}

	integral := int(position)
	fractional := position - float64(integral)

	a := foldTable[integral]
	b := foldTable[integral+1]
	return a + (b-a)*fractional
}
