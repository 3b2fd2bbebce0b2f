package vmath

// 8.8 fixed point constants
const (
	Shift   = 8
	Unit    = 1 << Shift // 256 = one game unit
	LUTSize = 256
	LUTMask = LUTSize - 1

	// QuarterTurn is the angle offset between sine and cosine
	QuarterTurn Angle = 64

	// sineScale is the divisor matching the LUT amplitude
	sineScale = 128
)

// Angle is a full turn in 256 steps; arithmetic wraps modulo 256
type Angle uint8

// Add returns the angle advanced by delta steps, wrapping
func (a Angle) Add(delta int) Angle {
	return a + Angle(delta)
}

// Units converts whole game units to 8.8 fixed point
func Units(n int) int16 { return int16(n * Unit) }

// --- Trigonometry ---

// Sin returns the table sine of angle in [-127, 127]
func Sin(a Angle) int8 {
	return SinLUT[a]
}

// Cos returns Sin shifted by a quarter turn
func Cos(a Angle) int8 {
	return SinLUT[a+QuarterTurn]
}

// DirectionForAngle returns the heading vector (sin a, -cos a)
// Magnitude is ~127 on the dominant axis; screen Y grows upward
func DirectionForAngle(a Angle) Vec2 {
	return Vec2{X: int16(Sin(a)), Y: -int16(Cos(a))}
}

// MulSine computes value*sin(a)/128 with a widened intermediate
// Division truncates toward zero
func MulSine(value int16, a Angle) int16 {
	return int16(int32(value) * int32(SinLUT[a]) / sineScale)
}

// Abs returns absolute value of a widened coordinate
func Abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x int16) int16 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}
