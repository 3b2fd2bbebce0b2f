package audio

import (
	"errors"
	"time"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundFire   SoundType = iota // Shot leaves a ship
	SoundHit                     // Shot strikes a ship
	SoundHeadOn                  // Ships collide
	SoundPoint                   // Round awarded
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	case SoundHeadOn:
		return "head_on"
	case SoundPoint:
		return "point"
	}
	return "unknown"
}

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
	SampleRate    int
}

// DefaultAudioConfig returns the stock mix
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		EffectVolumes: map[SoundType]float64{
			SoundFire:   0.4,
			SoundHit:    0.8,
			SoundHeadOn: 0.9,
			SoundPoint:  0.5,
		},
		SampleRate: 48000,
	}
}

// Effect envelopes
const (
	fireDuration = 120 * time.Millisecond
	fireAttack   = 2 * time.Millisecond
	fireRelease  = 80 * time.Millisecond

	// Explosions roughly track the 400-frame debris flourish at ~60 FPS
	hitDuration    = 1500 * time.Millisecond
	hitAttack      = 5 * time.Millisecond
	hitRelease     = 1300 * time.Millisecond
	headOnDuration = 2000 * time.Millisecond
	headOnRelease  = 1800 * time.Millisecond

	pointNote1Duration = 90 * time.Millisecond
	pointNote2Duration = 180 * time.Millisecond
	pointAttack        = 3 * time.Millisecond
	pointRelease       = 60 * time.Millisecond
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
