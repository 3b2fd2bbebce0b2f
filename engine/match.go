package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/vector-duel/input"
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/render"
	"github.com/lixenwraith/vector-duel/vmath"
)

// Match owns all simulation state and drives one frame per Step
// Scores survive rounds; everything else is re-initialised per round
type Match struct {
	round  Round
	scores [2]Score

	painter  *render.Painter
	input    input.Sampler
	rng      *vmath.FastRand
	listener Listener

	// beforeStep runs at the start of every frame, nil for none
	beforeStep func()

	frames uint64
	rounds int
}

// Option configures a Match
type Option func(*Match)

// WithListener attaches an event listener
func WithListener(l Listener) Option {
	return func(m *Match) {
		if l != nil {
			m.listener = l
		}
	}
}

// WithBeforeStep runs fn at the start of every Step, ahead of painting and input sampling
func WithBeforeStep(fn func()) Option {
	return func(m *Match) {
		m.beforeStep = fn
	}
}

// NewMatch creates a match with both scores at zero and the first round spawned
func NewMatch(painter *render.Painter, in input.Sampler, rng *vmath.FastRand, opts ...Option) *Match {
	if in == nil {
		in = input.Released{}
	}
	if rng == nil {
		rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	m := &Match{
		painter:  painter,
		input:    in,
		rng:      rng,
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.scores[Player0].Reset()
	m.scores[Player1].Reset()
	m.round.Reset(m.rng)
	return m
}

// Round exposes the current round state
func (m *Match) Round() *Round {
	return &m.round
}

// Score returns a seat's score
func (m *Match) Score(id PlayerID) Score {
	return m.scores[id]
}

// Frames returns the number of completed steps
func (m *Match) Frames() uint64 {
	return m.frames
}

// Rounds returns the number of resolved rounds
func (m *Match) Rounds() int {
	return m.rounds
}

// Step runs one frame: draw, collide, then advance
// Collision always uses this frame's positions before anything moves
func (m *Match) Step() {
	r := &m.round

	if m.beforeStep != nil {
		m.beforeStep()
	}

	m.paintPlayfield()

	switch r.phase {
	case PhaseActive:
		m.simulate()
	case PhaseExploding:
		m.paintDebris()
		r.explosionLeft--
		if r.explosionLeft <= 0 {
			r.phase = PhaseResolved
		}
	}

	if r.phase == PhaseResolved {
		m.resolve()
	}

	m.frames++
}

// Run steps until ctx is cancelled
// A nil tick runs unpaced, the frame rate then being the render time itself
func (m *Match) Run(ctx context.Context, tick <-chan time.Time) error {
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		m.Step()
	}
}

func (m *Match) simulate() {
	r := &m.round

	if r.HeadOn() {
		r.explode(OutcomeHeadOn, NoPlayer)
		m.listener.ExplosionStarted(OutcomeHeadOn, NoPlayer)
		return
	}

	if loser, hit := r.AdvanceShots(); hit {
		r.explode(OutcomePlayerHit, loser)
		m.listener.ExplosionStarted(OutcomePlayerHit, loser)
		return
	}

	for i := range r.Players {
		id := PlayerID(i)
		controls := input.Sample(m.input, i)
		if slot, fired := r.Players[id].Update(id, controls, &r.Shots); fired {
			m.listener.ShotFired(id, *r.Shots.Get(slot))
		}
	}
}

func (m *Match) resolve() {
	r := &m.round

	outcome := r.outcome
	winner := NoPlayer
	if outcome == OutcomePlayerHit {
		winner = r.loser.Opponent()
		m.scores[winner].Increment()
	}
	m.rounds++
	m.listener.RoundResolved(outcome, winner, m.scores)

	r.Reset(m.rng)
}

// paintPlayfield strokes ships, scores and live shots
func (m *Match) paintPlayfield() {
	r := &m.round
	p := m.painter

	for i := range r.Players {
		p.PaintShip(r.Players[i].Position, r.Players[i].Angle)
	}

	p.PaintScore(vmath.Vec2{X: vmath.Units(parameter.Score1X), Y: vmath.Units(parameter.ScoreY)}, m.scores[Player1])
	p.PaintScore(vmath.Vec2{X: vmath.Units(parameter.Score0X), Y: vmath.Units(parameter.ScoreY)}, m.scores[Player0])

	r.Shots.Each(func(_ SlotID, s *Shot) {
		p.PaintPoint(s.Position)
	})
}

func (m *Match) paintDebris() {
	r := &m.round
	mask := r.debrisMask()
	for i, on := range mask {
		if on {
			m.painter.PaintDebris(r.Players[i].Position, m.rng)
		}
	}
}
