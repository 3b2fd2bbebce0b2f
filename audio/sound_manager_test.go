package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/vector-duel/engine"
)

var _ engine.Listener = (*SoundManager)(nil)

func TestSoundManagerUninitializedIsNoop(t *testing.T) {
	sm := NewSoundManager(nil)

	sm.ShotFired(engine.Player0, engine.Shot{})
	sm.ExplosionStarted(engine.OutcomeHeadOn, engine.NoPlayer)
	sm.RoundResolved(engine.OutcomePlayerHit, engine.Player1, [2]engine.Score{})

	for st := SoundType(0); st < soundTypeCount; st++ {
		if sm.Played(st) != 0 {
			t.Errorf("%s queued without an initialized speaker", st)
		}
	}
	// Cleanup before Initialize must be safe
	sm.Cleanup()
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(100 * time.Millisecond); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("expected ErrAudioDisabled, got %v", err)
	}
}

func TestPlayedBounds(t *testing.T) {
	sm := NewSoundManager(nil)
	if sm.Played(-1) != 0 || sm.Played(soundTypeCount) != 0 {
		t.Error("out of range types must report zero")
	}
}

func TestSoundTypeString(t *testing.T) {
	if SoundHeadOn.String() != "head_on" || SoundType(99).String() != "unknown" {
		t.Error("unexpected names")
	}
}
