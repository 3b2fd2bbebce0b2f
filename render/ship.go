package render

import (
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// shipOutline is the unrotated silhouette: two back corners and the nose on +Y
var shipOutline = [3]vmath.Vec2{
	{X: -vmath.Units(parameter.ShipHalfWidth), Y: -vmath.Units(parameter.ShipHalfLength)},
	{X: vmath.Units(parameter.ShipHalfWidth), Y: -vmath.Units(parameter.ShipHalfLength)},
	{X: 0, Y: vmath.Units(parameter.ShipHalfLength)},
}

// ShipVertices returns the rotated and translated silhouette
func ShipVertices(pos vmath.Vec2, angle vmath.Angle) [3]vmath.Vec2 {
	var out [3]vmath.Vec2
	for i, v := range shipOutline {
		out[i] = v.Rotate(angle).Add(pos)
	}
	return out
}

// PaintShip strokes a ship at pos facing angle
func (p *Painter) PaintShip(pos vmath.Vec2, angle vmath.Angle) {
	vertices := ShipVertices(pos, angle)
	p.PaintPolygon(vertices[:])
}
