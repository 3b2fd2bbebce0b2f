package engine

import (
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/vmath"
)

// Phase is the round state
type Phase uint8

const (
	// PhaseActive simulates ships and shots
	PhaseActive Phase = iota
	// PhaseExploding freezes the simulation and plays debris
	PhaseExploding
	// PhaseResolved is transient; the match scores it and starts the next round
	PhaseResolved
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseExploding:
		return "exploding"
	case PhaseResolved:
		return "resolved"
	}
	return "unknown"
}

// Outcome is how a round ended
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	// OutcomeHeadOn is a ship-ship collision; nobody scores
	OutcomeHeadOn
	// OutcomePlayerHit is a shot striking the opposing ship
	OutcomePlayerHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHeadOn:
		return "head-on"
	case OutcomePlayerHit:
		return "player-hit"
	}
	return "none"
}

// Round holds the per-round simulation state
type Round struct {
	Players [2]Player
	Shots   ShotPool

	phase   Phase
	outcome Outcome
	loser   PlayerID

	// explosionLeft counts remaining debris frames
	explosionLeft int
}

// Reset spawns both ships and clears the pool
func (r *Round) Reset(rng *vmath.FastRand) {
	r.Players[Player0] = SpawnPlayer(Player0, rng)
	r.Players[Player1] = SpawnPlayer(Player1, rng)
	r.Shots.Reset()
	r.phase = PhaseActive
	r.outcome = OutcomeNone
	r.loser = NoPlayer
	r.explosionLeft = 0
}

// Phase returns the round state
func (r *Round) Phase() Phase {
	return r.phase
}

// Outcome returns how the round ended; OutcomeNone while active
func (r *Round) Outcome() Outcome {
	return r.outcome
}

// Loser returns the hit seat of an OutcomePlayerHit round, NoPlayer otherwise
func (r *Round) Loser() PlayerID {
	return r.loser
}

// ExplosionLeft returns remaining debris frames
func (r *Round) ExplosionLeft() int {
	return r.explosionLeft
}

// HeadOn reports whether the ships' hit boxes overlap
func (r *Round) HeadOn() bool {
	p0, p1 := &r.Players[Player0], &r.Players[Player1]
	return vmath.BoxOverlap(p0.Position, parameter.ShipRadius, p1.Position, parameter.ShipRadius)
}

// AdvanceShots moves each live shot and tests it against its owner's opponent
// Stops at the first hit, releasing that shot; returns the hit seat
func (r *Round) AdvanceShots() (PlayerID, bool) {
	for i := 0; i < r.Shots.Cap(); i++ {
		id := SlotID(i)
		s := r.Shots.Get(id)
		if !s.Live() {
			continue
		}

		s.Advance()

		target := s.Owner.Opponent()
		if vmath.BoxOverlap(s.Position, parameter.ShotRadius, r.Players[target].Position, parameter.TargetRadius) {
			r.Shots.Release(id)
			return target, true
		}
	}
	return 0, false
}

// explode enters the debris phase
func (r *Round) explode(outcome Outcome, loser PlayerID) {
	r.phase = PhaseExploding
	r.outcome = outcome
	r.loser = loser
	r.explosionLeft = parameter.ExplosionFrames
}

// debrisMask returns which ships throw debris
func (r *Round) debrisMask() [2]bool {
	switch r.outcome {
	case OutcomeHeadOn:
		return [2]bool{true, true}
	case OutcomePlayerHit:
		var m [2]bool
		if r.loser <= Player1 {
			m[r.loser] = true
		}
		return m
	}
	return [2]bool{}
}
