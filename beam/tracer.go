package beam

import "time"

// Stroke is one lit beam path in DAC space; From == To is a dot
type Stroke struct {
	From, To Point
}

// Dot reports whether the stroke has no extent
func (s Stroke) Dot() bool {
	return s.From == s.To
}

// Tracer records the lit paths the beam takes during a frame
// Frontends that cannot drive a real CRT rasterise the strokes instead
type Tracer struct {
	strokes []Stroke
	cursor  Point
	lit     bool

	// moves counts cursor writes since the last Flush
	moves int
}

// NewTracer creates a tracer with room for a typical frame
func NewTracer() *Tracer {
	return &Tracer{
		strokes: make([]Stroke, 0, 512),
		cursor:  Point{X: 128, Y: 128},
	}
}

func (t *Tracer) SetBeam(on bool) {
	t.lit = on
}

func (t *Tracer) MoveCursor(x, y int16) {
	p := PointOf(x, y)
	if t.lit {
		t.strokes = append(t.strokes, Stroke{From: t.cursor, To: p})
	}
	t.cursor = p
	t.moves++
}

// Hold on a lit beam leaves a dot at the cursor
func (t *Tracer) Hold(time.Duration) {
	if t.lit {
		t.strokes = append(t.strokes, Stroke{From: t.cursor, To: t.cursor})
	}
}

// Strokes returns the strokes recorded since the last Flush
// The slice is reused after Flush
func (t *Tracer) Strokes() []Stroke {
	return t.strokes
}

// Moves returns the cursor write count since the last Flush
func (t *Tracer) Moves() int {
	return t.moves
}

// Lit reports the current beam state
func (t *Tracer) Lit() bool {
	return t.lit
}

// Flush ends the frame; the beam state and cursor carry over
func (t *Tracer) Flush() {
	t.strokes = t.strokes[:0]
	t.moves = 0
}
