// Package window runs the duel in an ebiten window drawn as a phosphor scope
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vector-duel/beam"
	"github.com/lixenwraith/vector-duel/engine"
	"github.com/lixenwraith/vector-duel/parameter"
)

var (
	beamColor = color.RGBA{R: 64, G: 255, B: 96, A: 255}
	faceColor = color.RGBA{R: 4, G: 10, B: 6, A: 255}
)

// Scope is an ebiten.Game stepping one match frame per Update
// Each Draw lays the latest frame's strokes on a persistent glow buffer that fades first
type Scope struct {
	match  *engine.Match
	tracer *beam.Tracer
	keys   *Keyboard

	size  int
	decay float64
	width float32
	glow  *ebiten.Image
}

// NewScope creates a square scope of size pixels
// tracer must be the driver (or part of the driver) the match paints on
func NewScope(m *engine.Match, tracer *beam.Tracer, keys *Keyboard, size int, decay float64) *Scope {
	if size <= 0 {
		size = parameter.WindowSize
	}
	if decay < 0 || decay >= 1 {
		decay = parameter.PhosphorDecay
	}
	return &Scope{
		match:  m,
		tracer: tracer,
		keys:   keys,
		size:   size,
		decay:  decay,
		width:  float32(parameter.BeamWidth * float64(size) / parameter.WindowSize),
	}
}

// Update implements ebiten.Game
func (s *Scope) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if s.keys != nil {
		s.keys.Poll()
	}
	s.advance()
	return nil
}

// advance replaces the traced frame with the next one
// Draw then shows only the latest frame, however many Updates ran
func (s *Scope) advance() {
	s.tracer.Flush()
	s.match.Step()
}

// Draw implements ebiten.Game
func (s *Scope) Draw(screen *ebiten.Image) {
	if s.glow == nil {
		s.glow = ebiten.NewImage(s.size, s.size)
		s.glow.Fill(faceColor)
	}

	// fade toward the face colour
	fade := color.NRGBA{R: faceColor.R, G: faceColor.G, B: faceColor.B, A: uint8(255 * (1 - s.decay))}
	sz := float32(s.size)
	vector.FillRect(s.glow, 0, 0, sz, sz, fade, false)

	for _, st := range s.tracer.Strokes() {
		x0, y0 := pixelOf(st.From, s.size)
		if st.Dot() {
			vector.FillCircle(s.glow, x0, y0, s.width, beamColor, true)
			continue
		}
		x1, y1 := pixelOf(st.To, s.size)
		vector.StrokeLine(s.glow, x0, y0, x1, y1, s.width, beamColor, true)
	}

	screen.DrawImage(s.glow, nil)
}

// Layout implements ebiten.Game
func (s *Scope) Layout(_, _ int) (int, int) {
	return s.size, s.size
}

// pixelOf maps a DAC point to the centre of its pixel span; DAC Y grows upward
func pixelOf(p beam.Point, size int) (float32, float32) {
	unit := float32(size) / parameter.DACRange
	x := (float32(p.X) + 0.5) * unit
	y := (float32(parameter.DACRange-1-int(p.Y)) + 0.5) * unit
	return x, y
}
