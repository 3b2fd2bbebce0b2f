package engine

import (
	"github.com/lixenwraith/vector-duel/input"
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// PlayerID indexes the two-seat player table
type PlayerID uint8

const (
	Player0 PlayerID = iota
	Player1

	// NoPlayer marks the seat of a round nobody lost or won
	NoPlayer PlayerID = 0xFF
)

// Opponent returns the other seat; NoPlayer has none
func (id PlayerID) Opponent() PlayerID {
	if id > Player1 {
		return NoPlayer
	}
	return 1 - id
}

// Player is one ship
// FireLatch holds the previous frame's fire input for edge detection
type Player struct {
	Position  vmath.Vec2
	Angle     vmath.Angle
	Velocity  vmath.Vec2
	FireLatch bool
}

// SpawnPlayer places a fresh ship for seat id
// Seat 0 spawns at (-rand, 2*rand) facing +X, seat 1 at (rand, 2*rand) facing -X
// The doubled term may wrap, scattering ships over the full vertical range
func SpawnPlayer(id PlayerID, rng *vmath.FastRand) Player {
	x := rng.Rand15()
	y := 2 * rng.Rand15()

	p := Player{Position: vmath.Vec2{X: int16(x), Y: int16(y)}}
	switch id {
	case Player0:
		p.Position.X = int16(-x)
		p.Angle = parameter.Player0Angle
	default:
		p.Angle = parameter.Player1Angle
	}
	return p
}

// Update applies one frame of input: thrust or friction, turning, firing, then integration
// Returns the slot of a newly fired shot
func (p *Player) Update(id PlayerID, in input.Controls, shots *ShotPool) (SlotID, bool) {
	if in.Accelerate {
		d := vmath.DirectionForAngle(p.Angle).Div(parameter.ThrustDivisor)
		p.Velocity.X = thrust(p.Velocity.X, d.X)
		p.Velocity.Y = thrust(p.Velocity.Y, d.Y)
	} else {
		p.Velocity.X = friction(p.Velocity.X)
		p.Velocity.Y = friction(p.Velocity.Y)
	}

	if in.Left {
		p.Angle = p.Angle.Add(-parameter.TurnStep)
	}
	if in.Right {
		p.Angle = p.Angle.Add(parameter.TurnStep)
	}

	fired := SlotID(-1)
	ok := false
	if in.Fire && !p.FireLatch {
		vel := vmath.DirectionForAngle(p.Angle).Scale(parameter.ShotSpeedMultiplier)
		fired, ok = shots.Fire(id, p.Position, vel)
	}
	p.FireLatch = in.Fire

	p.Position = p.Position.Add(p.Velocity)
	return fired, ok
}

// thrust adds d to v only if the axis stays under the cap
func thrust(v, d int16) int16 {
	if vmath.Abs(int32(v)+int32(d)) < parameter.VelocityCap {
		return v + d
	}
	return v
}

// friction moves v one step toward zero without overshoot
func friction(v int16) int16 {
	switch {
	case v > 0:
		return v - parameter.FrictionStep
	case v < 0:
		return v + parameter.FrictionStep
	}
	return v
}
