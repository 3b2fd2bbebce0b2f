package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vector-duel/engine"
)

// SoundManager plays match effects through the beep speaker
// It implements engine.Listener; callbacks only queue streamers and never block the frame
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool

	// played counts queued effects per type
	played [soundTypeCount]int
}

// NewSoundManager creates a new sound manager; nil cfg selects defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize(bufferDuration time.Duration) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(bufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues a sound effect; no-op until initialized
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[soundType]++
}

// Played returns how many times soundType was queued
func (sm *SoundManager) Played(soundType SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if soundType < 0 || soundType >= soundTypeCount {
		return 0
	}
	return sm.played[soundType]
}

// --- engine.Listener ---

func (sm *SoundManager) ShotFired(engine.PlayerID, engine.Shot) {
	sm.Play(SoundFire)
}

func (sm *SoundManager) ExplosionStarted(outcome engine.Outcome, _ engine.PlayerID) {
	if outcome == engine.OutcomeHeadOn {
		sm.Play(SoundHeadOn)
		return
	}
	sm.Play(SoundHit)
}

func (sm *SoundManager) RoundResolved(outcome engine.Outcome, _ engine.PlayerID, _ [2]engine.Score) {
	if outcome == engine.OutcomePlayerHit {
		sm.Play(SoundPoint)
	}
}
