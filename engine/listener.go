package engine

import "log"

// Listener observes match events; callbacks run inside Step and must not block
// loser and winner are NoPlayer for OutcomeHeadOn
type Listener interface {
	ShotFired(owner PlayerID, shot Shot)
	ExplosionStarted(outcome Outcome, loser PlayerID)
	RoundResolved(outcome Outcome, winner PlayerID, scores [2]Score)
}

// NopListener ignores every event
type NopListener struct{}

func (NopListener) ShotFired(PlayerID, Shot) {}

func (NopListener) ExplosionStarted(Outcome, PlayerID) {}

func (NopListener) RoundResolved(Outcome, PlayerID, [2]Score) {}

// Listeners fans events out in order
type Listeners []Listener

func (ls Listeners) ShotFired(owner PlayerID, shot Shot) {
	for _, l := range ls {
		l.ShotFired(owner, shot)
	}
}

func (ls Listeners) ExplosionStarted(outcome Outcome, loser PlayerID) {
	for _, l := range ls {
		l.ExplosionStarted(outcome, loser)
	}
}

func (ls Listeners) RoundResolved(outcome Outcome, winner PlayerID, scores [2]Score) {
	for _, l := range ls {
		l.RoundResolved(outcome, winner, scores)
	}
}

// LogListener writes round results to the standard logger
type LogListener struct {
	NopListener
	Session string
}

func (l LogListener) ExplosionStarted(outcome Outcome, loser PlayerID) {
	if outcome == OutcomeHeadOn {
		log.Printf("[%s] head-on collision", l.Session)
		return
	}
	log.Printf("[%s] player %d hit", l.Session, loser+1)
}

func (l LogListener) RoundResolved(outcome Outcome, winner PlayerID, scores [2]Score) {
	switch outcome {
	case OutcomePlayerHit:
		log.Printf("[%s] round to player %d, score %02d-%02d", l.Session, winner+1, scores[0].Value(), scores[1].Value())
	default:
		log.Printf("[%s] round drawn, score %02d-%02d", l.Session, scores[0].Value(), scores[1].Value())
	}
}
