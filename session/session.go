// Package session assembles a match with its drivers from a run configuration
// Frontends read the display tracer and supply the keyboard; the session adds
// recording, sound and logging listeners around the match
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vector-duel/audio"
	"github.com/lixenwraith/vector-duel/beam"
	"github.com/lixenwraith/vector-duel/config"
	"github.com/lixenwraith/vector-duel/engine"
	"github.com/lixenwraith/vector-duel/input"
	"github.com/lixenwraith/vector-duel/parameter"
	"github.com/lixenwraith/vector-duel/record"
	"github.com/lixenwraith/vector-duel/render"
	"github.com/lixenwraith/vector-duel/vmath"
)

// AutoRecordPath asks for a recording named after the session ID
const AutoRecordPath = "auto"

// Options selects per-run wiring beyond the config file
type Options struct {
	// Human samples the seats not flown by the autopilot; nil leaves them released
	Human input.Sampler

	// Autopilot lists seats flown by the autopilot
	Autopilot []int

	// Muted skips audio initialisation
	Muted bool

	// Headless paints only to the recorder, if any; Tracer stays nil
	Headless bool
}

// Session owns one match and every driver attached to it
// Tracer holds the strokes of the latest frame; each Step starts by flushing it
type Session struct {
	ID     string
	Config *config.Config
	Seed   uint64

	Tracer    *beam.Tracer
	Recorder  *record.WAVRecorder
	Sound     *audio.SoundManager
	Autopilot *input.Autopilot
	Match     *engine.Match
}

// New wires a session; recording failure is fatal, audio failure is logged and skipped
func New(cfg *config.Config, opts Options) (*Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		ID:     uuid.NewString(),
		Config: cfg,
		Seed:   cfg.SeedOrNow(),
	}
	log.Printf("[%s] session start, seed %d", s.ID, s.Seed)

	var drivers beam.Tee
	if !opts.Headless {
		s.Tracer = beam.NewTracer()
		drivers = append(drivers, s.Tracer)
	}
	if path := cfg.Record.Path; path != "" {
		if path == AutoRecordPath {
			path = RecordingName(s.ID)
		}
		rec, err := record.Create(path, record.Options{
			SampleRate:    cfg.Record.SampleRate,
			BlankToCenter: cfg.Record.BlankToCenter,
		})
		if err != nil {
			return nil, err
		}
		s.Recorder = rec
		drivers = append(drivers, rec)
		log.Printf("[%s] recording beam to %s", s.ID, path)
	}

	listeners := engine.Listeners{engine.LogListener{Session: s.ID}}
	if !opts.Muted && cfg.Audio.Enabled {
		ac := audio.DefaultAudioConfig()
		ac.MasterVolume = cfg.Audio.Volume
		sm := audio.NewSoundManager(ac)
		if err := sm.Initialize(parameter.AudioBufferDuration); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("[%s] audio initialization failed: %v", s.ID, err)
		} else {
			s.Sound = sm
			listeners = append(listeners, sm)
		}
	}

	rng := vmath.NewFastRand(s.Seed)

	var sampler input.Sampler = input.Released{}
	if opts.Human != nil {
		sampler = opts.Human
	}
	if len(opts.Autopilot) > 0 {
		// the pilot draws from its own stream so rounds stay reproducible per seed
		s.Autopilot = input.NewAutopilot(vmath.NewFastRand(s.Seed^0x9E3779B97F4A7C15), 0)
		var seats input.Seats
		for i := range seats {
			seats[i] = sampler
		}
		for _, seat := range opts.Autopilot {
			if seat < 0 || seat >= input.PlayerCount {
				s.Close()
				return nil, fmt.Errorf("autopilot seat %d out of range", seat+1)
			}
			seats[seat] = s.Autopilot
		}
		sampler = seats
	}

	var drv beam.Driver = drivers
	if len(drivers) == 0 {
		drv = beam.Discard{}
	}
	painter := render.NewPainter(drv, cfg.Dwell)
	s.Match = engine.NewMatch(painter, sampler, rng,
		engine.WithListener(listeners),
		engine.WithBeforeStep(s.beginFrame),
	)
	return s, nil
}

// RecordingName is the default recording file for a session
func RecordingName(id string) string {
	return fmt.Sprintf("vector-duel-%s.wav", id)
}

// beginFrame clears the previous frame and advances per-frame input sources
func (s *Session) beginFrame() {
	if s.Tracer != nil {
		s.Tracer.Flush()
	}
	if s.Autopilot != nil {
		s.Autopilot.Next()
	}
}

// RunFrames steps the match unpaced for exactly frames frames
// Returns ctx's error if it ends first, nil otherwise
func (s *Session) RunFrames(ctx context.Context, frames int) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// unbuffered: Run takes each tick before the next is offered, so cancel
	// after the last send lands before any further step
	tick := make(chan time.Time)
	go func() {
		defer cancel()
		for i := 0; i < frames; i++ {
			select {
			case tick <- time.Time{}:
			case <-runCtx.Done():
				return
			}
		}
	}()

	err := s.Match.Run(runCtx, tick)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases audio and finalises the recording
func (s *Session) Close() error {
	var errs []error
	if s.Sound != nil {
		s.Sound.Cleanup()
		s.Sound = nil
	}
	if s.Recorder != nil {
		if err := s.Recorder.Close(); err != nil && !errors.Is(err, record.ErrClosed) {
			errs = append(errs, err)
		}
	}
	if s.Match != nil {
		log.Printf("[%s] session end after %d frames, %d rounds, score %02d-%02d", s.ID,
			s.Match.Frames(), s.Match.Rounds(),
			s.Match.Score(engine.Player0).Value(), s.Match.Score(engine.Player1).Value())
	}
	return errors.Join(errs...)
}
