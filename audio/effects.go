package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
// freq glides linearly to endFreq across the duration when endFreq > 0
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.endFreq > 0 && o.duration > 0 {
			progress := float64(o.position) / float64(o.duration)
			freq = o.freq + (o.endFreq-o.freq)*progress
		}

		// Advance phase
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a volume effect
// math.Log2(0) is -Inf, so 0 volume becomes silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateFireSound generates a falling square chirp
func CreateFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1800.0, 300.0, fireDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, fireDuration, fireAttack, fireRelease, rate)

	return newVolume(shaped, cfg.EffectVolumes[SoundFire]*cfg.MasterVolume)
}

// CreateHitSound generates a one-sided explosion: noise over a falling rumble
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, hitDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, hitDuration, hitAttack, hitRelease, rate)

	rumble := NewSweep(90.0, 30.0, hitDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, hitDuration, hitAttack, hitRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundHit]*cfg.MasterVolume)
}

// CreateHeadOnSound generates a longer two-ship explosion with a saw growl
func CreateHeadOnSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, headOnDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, headOnDuration, hitAttack, headOnRelease, rate)

	growl := NewSweep(70.0, 25.0, headOnDuration, WaveSaw, rate)
	growlShaped := NewEnvelope(growl, headOnDuration, hitAttack, headOnRelease, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(growlShaped, 0.3),
	)

	return newVolume(mixed, cfg.EffectVolumes[SoundHeadOn]*cfg.MasterVolume)
}

// CreatePointSound generates a two-note chime for a won round
func CreatePointSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// First note (E5)
	n1 := NewOscillator(659.25, pointNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, pointNote1Duration, pointAttack, pointRelease, rate)

	// Second note (A5)
	n2 := NewOscillator(880.0, pointNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, pointNote2Duration, pointAttack, pointRelease, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	return newVolume(sequence, cfg.EffectVolumes[SoundPoint]*cfg.MasterVolume)
}

// GetSoundEffect returns the streamer for soundType, nil for unknown types
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFire:
		return CreateFireSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundHeadOn:
		return CreateHeadOnSound(cfg)
	case SoundPoint:
		return CreatePointSound(cfg)
	default:
		return nil
	}
}
