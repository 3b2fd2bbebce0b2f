package vmath

import (
	"testing"
)

func TestSinRangeAndWrap(t *testing.T) {
	for i := 0; i < 512; i++ {
		a := Angle(i)
		s := Sin(a)
		if s < -127 || s > 127 {
			t.Errorf("Sin(%d) = %d, out of [-127, 127]", i, s)
		}
		// Angle(i+256) is the same value after wrap
		if Sin(Angle(i+256)) != s {
			t.Errorf("Sin(%d+256) != Sin(%d)", i, i)
		}
	}
}

func TestSinKeyPoints(t *testing.T) {
	tests := []struct {
		angle Angle
		want  int8
	}{
		{0, 0},
		{64, 127},
		{128, 0},
		{192, -127},
		{32, 90},
	}
	for _, tt := range tests {
		if got := Sin(tt.angle); got != tt.want {
			t.Errorf("Sin(%d) = %d, want %d", tt.angle, got, tt.want)
		}
	}
}

func TestSinOddSymmetry(t *testing.T) {
	for i := 0; i < LUTSize; i++ {
		a := Angle(i)
		if Sin(a) != -Sin(-a) {
			t.Errorf("Sin(%d)=%d, Sin(-%d)=%d", i, Sin(a), i, Sin(-a))
		}
	}
}

func TestDirectionForAngle(t *testing.T) {
	tests := []struct {
		angle Angle
		want  Vec2
	}{
		{0, Vec2{0, -127}},
		{64, Vec2{127, 0}},
		{128, Vec2{0, 127}},
		{192, Vec2{-127, 0}},
	}
	for _, tt := range tests {
		if got := DirectionForAngle(tt.angle); got != tt.want {
			t.Errorf("DirectionForAngle(%d) = %+v, want %+v", tt.angle, got, tt.want)
		}
	}
}

func TestMulSine(t *testing.T) {
	// 127/128 of the value at a quarter turn, truncated toward zero
	if got := MulSine(Units(8), 64); got != 2032 {
		t.Errorf("MulSine(2048, 64) = %d, want 2032", got)
	}
	if got := MulSine(-Units(8), 64); got != -2032 {
		t.Errorf("MulSine(-2048, 64) = %d, want -2032", got)
	}
	if got := MulSine(32767, 64); got != 32511 {
		t.Errorf("MulSine(32767, 64) = %d, want 32511 (no overflow)", got)
	}
	if got := MulSine(1000, 0); got != 0 {
		t.Errorf("MulSine(1000, 0) = %d, want 0", got)
	}
}

func TestAngleWrap(t *testing.T) {
	var a Angle = 0
	if a.Add(-1) != 255 {
		t.Errorf("expected 0-1 to wrap to 255, got %d", a.Add(-1))
	}
	a = 255
	if a.Add(1) != 0 {
		t.Errorf("expected 255+1 to wrap to 0, got %d", a.Add(1))
	}
}

func TestVec2AddWraps(t *testing.T) {
	v := Vec2{X: 32767, Y: -32768}
	got := v.Add(Vec2{X: 1, Y: -1})
	if got.X != -32768 || got.Y != 32767 {
		t.Errorf("expected wrap, got %+v", got)
	}
}

func TestRotateQuarterTurn(t *testing.T) {
	nose := Vec2{X: 0, Y: Units(12)}
	// Angle 0: nose stays on +Y scaled by 127/128 with sign flip from -cos term
	got := nose.Rotate(0)
	if got.X != 0 || got.Y != -MulSine(Units(12), QuarterTurn) {
		t.Errorf("Rotate(0) = %+v", got)
	}
	got = nose.Rotate(64)
	if got.X != MulSine(Units(12), 64) || got.Y != 0 {
		t.Errorf("Rotate(64) = %+v", got)
	}
}

func TestBoxOverlap(t *testing.T) {
	r := Units(8)
	p := Vec2{X: 100, Y: -100}
	if !BoxOverlap(p, r, p, r) {
		t.Error("identical positions must overlap")
	}
	far := Vec2{X: p.X + 2*r + 1, Y: p.Y + 2*r + 1}
	if BoxOverlap(p, r, far, r) {
		t.Error("separation beyond r0+r1 on both axes must not overlap")
	}
	// Boundary is inclusive
	edge := Vec2{X: p.X + 2*r, Y: p.Y - 2*r}
	if !BoxOverlap(p, r, edge, r) {
		t.Error("separation exactly r0+r1 must overlap")
	}
	// Box corner that a Euclidean test would reject
	corner := Vec2{X: p.X + 2*r - 1, Y: p.Y + 2*r - 1}
	if !BoxOverlap(p, r, corner, r) {
		t.Error("box approximation must accept the diagonal corner")
	}
	// Only one axis within range
	oneAxis := Vec2{X: p.X, Y: p.Y + 2*r + 1}
	if BoxOverlap(p, r, oneAxis, r) {
		t.Error("both axes must be within range")
	}
}

func TestBoxOverlapNoWrap(t *testing.T) {
	a := Vec2{X: 32767, Y: 0}
	b := Vec2{X: -32768, Y: 0}
	if BoxOverlap(a, 256, b, 256) {
		t.Error("opposite edges must not overlap through wrap-around")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	r1 := NewFastRand(42)
	r2 := NewFastRand(42)
	for i := 0; i < 100; i++ {
		a, b := r1.Rand15(), r2.Rand15()
		if a != b {
			t.Fatalf("sequence diverged at %d", i)
		}
		if a < 0 || a > RandMax {
			t.Fatalf("Rand15 out of range: %d", a)
		}
	}
}

func TestJitterRange(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		j := r.Jitter(0x1FFF, 0x1000)
		if j < -0x1000 || j >= 0x1FFF-0x1000 {
			t.Fatalf("jitter out of range: %d", j)
		}
	}
}

func TestLineTraverser(t *testing.T) {
	tr := NewLineTraverser(0, 0, 3, 1)
	var cells [][2]int
	for tr.Next() {
		x, y := tr.Pos()
		cells = append(cells, [2]int{x, y})
	}
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d: %v", len(cells), cells)
	}
	if cells[0] != [2]int{0, 0} || cells[3] != [2]int{3, 1} {
		t.Errorf("unexpected endpoints: %v", cells)
	}
}

func TestLineTraverserSinglePoint(t *testing.T) {
	tr := NewLineTraverser(5, 5, 5, 5)
	count := 0
	for tr.Next() {
		count++
	}
	if count != 1 {
		t.Errorf("expected 1 cell, got %d", count)
	}
}
