package parameter

import "time"

// Stroke Renderer
const (
	// LineDivisions is the number of interpolated samples swept per line
	LineDivisions = 16

	// PointDwell holds the lit beam on a point so the phosphor registers it
	PointDwell = 15 * time.Microsecond
)

// Ship Silhouette (whole units, local frame, nose on +Y)
const (
	ShipHalfWidth  = 8
	ShipHalfLength = 12
)

// Glyphs (whole units)
const (
	// GlyphSize is the dot spacing of the 2x3 glyph grid
	GlyphSize = 8

	// GlyphAdvance is the horizontal distance between score digits
	GlyphAdvance = 12
)

// Score Placement (whole units)
const (
	Score0X = -127
	Score1X = 104
	ScoreY  = 126
)
