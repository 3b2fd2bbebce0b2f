// Package render turns shapes and glyphs into beam moves
// Every primitive starts and ends with the beam blanked so calls compose in any order
package render

import (
	"math"
	"time"

	"github.com/lixenwraith/vector-duel/beam"
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// Painter strokes primitives on a beam driver; it holds no scene state
type Painter struct {
	drv   beam.Driver
	dwell time.Duration
}

// NewPainter creates a painter; dwell <= 0 selects parameter.PointDwell
func NewPainter(drv beam.Driver, dwell time.Duration) *Painter {
	if dwell <= 0 {
		dwell = parameter.PointDwell
	}
	return &Painter{drv: drv, dwell: dwell}
}

// PaintPoint leaves a dot at pos
func (p *Painter) PaintPoint(pos vmath.Vec2) {
	p.drv.SetBeam(false)
	p.drv.MoveCursor(pos.X, pos.Y)
	p.drv.SetBeam(true)
	p.drv.Hold(p.dwell)
	p.drv.SetBeam(false)
}

// PaintLine sweeps the lit beam from a to b through parameter.LineDivisions samples
// The axis difference wraps in 16 bits, so a segment across the playfield edge
// runs the short way round; samples that leave the int16 range are skipped
// while the beam stays lit, and the sweep always ends exactly on b
func (p *Painter) PaintLine(a, b vmath.Vec2) {
	p.drv.SetBeam(false)
	p.drv.MoveCursor(a.X, a.Y)
	p.drv.SetBeam(true)

	const divs = parameter.LineDivisions
	dx := int32(b.X - a.X)
	dy := int32(b.Y - a.Y)
	for i := int32(0); i < divs; i++ {
		x := i*dx/divs + int32(a.X)
		y := i*dy/divs + int32(a.Y)

		if x > math.MaxInt16 || y > math.MaxInt16 {
			continue
		}
		if x < math.MinInt16 || y < math.MinInt16 {
			continue
		}

		p.drv.MoveCursor(int16(x), int16(y))
	}

	p.drv.MoveCursor(b.X, b.Y)
	p.drv.SetBeam(false)
}

// PaintPolygon connects each vertex to the next, closing last to first
func (p *Painter) PaintPolygon(vertices []vmath.Vec2) {
	n := len(vertices)
	for i := 0; i < n; i++ {
		p.PaintLine(vertices[i], vertices[(i+1)%n])
	}
}

// PaintDebris strokes one random segment scattered around center
func (p *Painter) PaintDebris(center vmath.Vec2, rng *vmath.FastRand) {
	jitter := func(c int16) int16 {
		return int16(int(c) + rng.Jitter(parameter.DebrisSpan, parameter.DebrisOffset))
	}
	x1 := jitter(center.X)
	y1 := jitter(center.Y)
	x2 := jitter(center.X)
	y2 := jitter(center.Y)
	p.PaintLine(vmath.Vec2{X: x1, Y: y1}, vmath.Vec2{X: x2, Y: y2})
}
