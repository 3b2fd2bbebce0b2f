// Package terminal renders the beam trace on a tcell screen and samples the keyboard
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vector-duel/beam"
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// Phosphor glyphs from dim to bright
var phosphorRunes = []rune{'░', '▒', '▓', '█'}

// Scope is a phosphor display on a terminal
// Each cell keeps a brightness that strokes set to full and frames decay
type Scope struct {
	screen tcell.Screen
	width  int
	height int
	decay  float64
	glow   []float64
}

// NewScope creates a scope covering the whole screen
// decay outside [0, 1) selects parameter.PhosphorDecay
func NewScope(screen tcell.Screen, decay float64) *Scope {
	if decay < 0 || decay >= 1 {
		decay = parameter.PhosphorDecay
	}
	s := &Scope{screen: screen, decay: decay}
	s.Resize()
	return s
}

// Resize re-reads the screen size and clears the phosphor
func (s *Scope) Resize() {
	s.width, s.height = s.screen.Size()
	s.glow = make([]float64, s.width*s.height)
}

// Size returns the scope size in cells
func (s *Scope) Size() (int, int) {
	return s.width, s.height
}

// Brightness returns the phosphor level of a cell, 0 outside the screen
func (s *Scope) Brightness(x, y int) float64 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.glow[y*s.width+x]
}

// CellOf maps a DAC point to a cell; DAC Y grows upward, rows grow downward
func (s *Scope) CellOf(p beam.Point) (int, int) {
	x := int(p.X) * s.width / parameter.DACRange
	y := (parameter.DACRange - 1 - int(p.Y)) * s.height / parameter.DACRange
	return x, y
}

// Draw decays the phosphor, excites the cells under strokes and shows the result
func (s *Scope) Draw(strokes []beam.Stroke) {
	s.Fade()
	for _, st := range strokes {
		s.excite(st)
	}
	s.Present()
}

// Fade applies one frame of decay
func (s *Scope) Fade() {
	for i, g := range s.glow {
		g *= s.decay
		if g < parameter.PhosphorFloor {
			g = 0
		}
		s.glow[i] = g
	}
}

func (s *Scope) excite(st beam.Stroke) {
	x1, y1 := s.CellOf(st.From)
	x2, y2 := s.CellOf(st.To)

	t := vmath.NewLineTraverser(x1, y1, x2, y2)
	for t.Next() {
		x, y := t.Pos()
		if x < 0 || y < 0 || x >= s.width || y >= s.height {
			continue
		}
		s.glow[y*s.width+x] = 1.0
	}
}

// Present writes the phosphor to the screen
func (s *Scope) Present() {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			g := s.glow[y*s.width+x]
			if g == 0 {
				s.screen.SetContent(x, y, ' ', nil, bg)
				continue
			}
			s.screen.SetContent(x, y, phosphorRune(g), nil, bg.Foreground(phosphorColor(g)))
		}
	}
	s.screen.Show()
}

func phosphorRune(g float64) rune {
	i := int(g * float64(len(phosphorRunes)))
	if i >= len(phosphorRunes) {
		i = len(phosphorRunes) - 1
	}
	return phosphorRunes[i]
}

// phosphorColor is a P1-style green scaled by brightness
func phosphorColor(g float64) tcell.Color {
	level := int32(g * 255)
	if level > 255 {
		level = 255
	}
	return tcell.NewRGBColor(level/4, level, level/3)
}
