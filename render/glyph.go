package render

import (
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// Glyph grid dots, origin at the top left:
//
//	0---1
//	|   |
//	2---3
//	|   |
//	4---5
//
// Segment bits:
//
//	o--0--o
//	1     2
//	o--3--o
//	4     5
//	o--6--o
const (
	SegTop = 1 << iota
	SegUpperLeft
	SegUpperRight
	SegMiddle
	SegLowerLeft
	SegLowerRight
	SegBottom

	segmentCount = 7
)

// GlyphCount is the number of drawable symbols (hex digits)
const GlyphCount = 16

// glyphMasks holds segment masks for 0..F
// B shares 6's mask
var glyphMasks = [GlyphCount]uint8{
	0x77, // 0
	0x24, // 1
	0x5D, // 2
	0x6D, // 3
	0x2E, // 4
	0x6B, // 5
	0x7A, // 6
	0x25, // 7
	0x7F, // 8
	0x6F, // 9
	0x3F, // A
	0x7A, // B
	0x53, // C
	0x7C, // D
	0x5B, // E
	0x1B, // F
}

// segmentDots maps each segment bit to its pair of grid dots
var segmentDots = [segmentCount][2]int{
	{0, 1},
	{0, 2},
	{1, 3},
	{2, 3},
	{2, 4},
	{3, 5},
	{4, 5},
}

// GlyphMask returns the segment mask of code; false for codes above 0xF
func GlyphMask(code uint8) (uint8, bool) {
	if int(code) >= GlyphCount {
		return 0, false
	}
	return glyphMasks[code], true
}

// DecodeGlyph returns the lowest code drawn with mask
func DecodeGlyph(mask uint8) (uint8, bool) {
	for code, m := range glyphMasks {
		if m == mask {
			return uint8(code), true
		}
	}
	return 0, false
}

// GlyphDots returns the six grid dots of a glyph drawn at origin
func GlyphDots(origin vmath.Vec2) [6]vmath.Vec2 {
	size := vmath.Units(parameter.GlyphSize)
	x, y := origin.X, origin.Y
	return [6]vmath.Vec2{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x, Y: y - size},
		{X: x + size, Y: y - size},
		{X: x, Y: y - 2*size},
		{X: x + size, Y: y - 2*size},
	}
}

// SegmentEndpoints returns the dot pair of segment bit index seg
func SegmentEndpoints(dots [6]vmath.Vec2, seg int) (vmath.Vec2, vmath.Vec2) {
	pair := segmentDots[seg]
	return dots[pair[0]], dots[pair[1]]
}

// PaintGlyph strokes hex digit code with its top-left dot at origin
// Unknown codes draw nothing
func (p *Painter) PaintGlyph(origin vmath.Vec2, code uint8) {
	mask, ok := GlyphMask(code)
	if !ok {
		return
	}

	dots := GlyphDots(origin)
	for seg := 0; seg < segmentCount; seg++ {
		if mask&(1<<seg) == 0 {
			continue
		}
		a, b := SegmentEndpoints(dots, seg)
		p.PaintLine(a, b)
	}
}

// Digits is a two-digit display value
type Digits interface {
	Digits() (tens, units uint8)
}

// PaintScore strokes the tens digit at origin and the units digit one advance right
func (p *Painter) PaintScore(origin vmath.Vec2, score Digits) {
	tens, units := score.Digits()
	p.PaintGlyph(origin, tens)
	p.PaintGlyph(vmath.Vec2{X: origin.X + vmath.Units(parameter.GlyphAdvance), Y: origin.Y}, units)
}
