package input

import (
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// Autopilot is a Sampler that plays seats with seeded random intents
// Each seat keeps a turn/thrust choice for holdFrames and taps fire on and off
// Call Next once per frame before stepping the match
type Autopilot struct {
	rng        *vmath.FastRand
	holdFrames int
	seats      [PlayerCount]pilotSeat
}

type pilotSeat struct {
	controls Controls
	left     int
}

// NewAutopilot creates an autopilot; holdFrames <= 0 selects parameter.AutopilotHoldFrames
func NewAutopilot(rng *vmath.FastRand, holdFrames int) *Autopilot {
	if holdFrames <= 0 {
		holdFrames = parameter.AutopilotHoldFrames
	}
	return &Autopilot{rng: rng, holdFrames: holdFrames}
}

// Next advances every seat by one frame
func (a *Autopilot) Next() {
	for i := range a.seats {
		s := &a.seats[i]
		if s.left <= 0 {
			s.left = a.holdFrames
			turn := a.rng.Intn(3)
			s.controls.Left = turn == 1
			s.controls.Right = turn == 2
			s.controls.Accelerate = a.rng.Intn(2) == 0
		}
		s.left--

		// alternate frames so the fire edge is seen
		if s.controls.Fire {
			s.controls.Fire = false
		} else {
			s.controls.Fire = a.rng.Intn(8) == 0
		}
	}
}

// IsPressed implements Sampler
func (a *Autopilot) IsPressed(b Button) bool {
	if b.Player < 0 || b.Player >= PlayerCount {
		return false
	}
	c := a.seats[b.Player].controls
	switch b.Control {
	case ControlLeft:
		return c.Left
	case ControlRight:
		return c.Right
	case ControlAccelerate:
		return c.Accelerate
	case ControlFire:
		return c.Fire
	}
	return false
}

// Seats routes each player's buttons to its own sampler; nil seats read as released
type Seats [PlayerCount]Sampler

// IsPressed implements Sampler
func (s Seats) IsPressed(b Button) bool {
	if b.Player < 0 || b.Player >= PlayerCount || s[b.Player] == nil {
		return false
	}
	return s[b.Player].IsPressed(b)
}
