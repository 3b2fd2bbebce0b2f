package vmath

// Vec2 is a signed 8.8 fixed point pair
// Arithmetic wraps modulo 2^16 on each axis
type Vec2 struct {
	X, Y int16
}

// Add returns v+o with wrapping
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o with wrapping
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both axes by n
func (v Vec2) Scale(n int16) Vec2 {
	return Vec2{X: v.X * n, Y: v.Y * n}
}

// Div divides both axes by n, truncating toward zero
func (v Vec2) Div(n int16) Vec2 {
	if n == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / n, Y: v.Y / n}
}

// Rotate turns a local-frame vertex by angle a
// x' = x*cos + y*sin, y' = x*sin - y*cos, each term via MulSine
func (v Vec2) Rotate(a Angle) Vec2 {
	return Vec2{
		X: MulSine(v.X, a+QuarterTurn) + MulSine(v.Y, a),
		Y: MulSine(v.X, a) - MulSine(v.Y, a+QuarterTurn),
	}
}

// BoxOverlap reports whether two circles overlap under the axis-aligned box approximation
// Both |dx| and |dy| must be within r0+r1; differences are widened so they never wrap
func BoxOverlap(a Vec2, r0 int16, b Vec2, r1 int16) bool {
	dx := Abs(int32(a.X) - int32(b.X))
	dy := Abs(int32(a.Y) - int32(b.Y))
	r := int32(r0) + int32(r1)
	return dx <= r && dy <= r
}
