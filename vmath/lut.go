package vmath

import (
	"math"
)

func init() {
	// One full period over the table, amplitude 127 so that int8 never saturates
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int8(math.Round(math.Sin(rad) * 127))
	}
}

// SinLUT holds round(127*sin(2*pi*i/256))
var SinLUT [LUTSize]int8
