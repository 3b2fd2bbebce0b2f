package session

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/vector-duel/config"
	"github.com/lixenwraith/vector-duel/engine"
	"github.com/lixenwraith/vector-duel/parameter"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestNewMutedDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 11

	s, err := New(cfg, Options{Muted: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if s.Sound != nil || s.Recorder != nil || s.Autopilot != nil {
		t.Error("Expected no optional drivers")
	}
	if s.Seed != 11 || s.ID == "" {
		t.Errorf("Unexpected identity: seed %d id %q", s.Seed, s.ID)
	}

	s.Match.Step()
	first := len(s.Tracer.Strokes())
	if first == 0 {
		t.Error("Expected the first frame to reach the tracer")
	}
	s.Match.Step()
	// a spawn collision adds at most two debris lines on the second frame
	if got := len(s.Tracer.Strokes()); got > first+2*(parameter.LineDivisions+1) {
		t.Errorf("Expected the tracer to hold one frame, got %d strokes after %d", got, first)
	}
}

func TestHeadlessRunFrames(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	s, err := New(cfg, Options{Muted: true, Headless: true, Autopilot: []int{0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	if s.Tracer != nil {
		t.Error("Expected no tracer for a headless session")
	}
	if err := s.RunFrames(context.Background(), 300); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	if s.Match.Frames() != 300 {
		t.Errorf("Expected exactly 300 frames, got %d", s.Match.Frames())
	}
}

func TestRunFramesCancelled(t *testing.T) {
	s, err := New(config.Default(), Options{Muted: true, Headless: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.RunFrames(ctx, 1_000_000); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if s.Match.Frames() >= 1_000_000 {
		t.Error("Expected the run to stop early")
	}
}

func TestAutopilotRecordedSession(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Seed = 5
	cfg.Record.Path = filepath.Join(dir, "duel.wav")
	cfg.Record.SampleRate = 8000

	s, err := New(cfg, Options{Muted: true, Headless: true, Autopilot: []int{0, 1}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.RunFrames(context.Background(), 2000); err != nil {
		t.Fatalf("RunFrames: %v", err)
	}
	frames := s.Recorder.Frames()
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if s.Match.Frames() != 2000 {
		t.Errorf("Expected 2000 frames, got %d", s.Match.Frames())
	}

	info, err := os.Stat(cfg.Record.Path)
	if err != nil {
		t.Fatalf("Expected recording on disk: %v", err)
	}
	// 44-byte header plus 4 bytes per stereo frame
	if info.Size() != int64(44+4*frames) {
		t.Errorf("Expected %d bytes, got %d", 44+4*frames, info.Size())
	}
}

func TestSessionsReproducible(t *testing.T) {
	run := func() (engine.Score, engine.Score, int) {
		cfg := config.Default()
		cfg.Seed = 1234
		s, err := New(cfg, Options{Muted: true, Headless: true, Autopilot: []int{0, 1}})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		defer s.Close()
		if err := s.RunFrames(context.Background(), 5000); err != nil {
			t.Fatalf("RunFrames: %v", err)
		}
		return s.Match.Score(engine.Player0), s.Match.Score(engine.Player1), s.Match.Rounds()
	}

	a0, a1, ar := run()
	b0, b1, br := run()
	if a0 != b0 || a1 != b1 || ar != br {
		t.Errorf("Expected identical runs, got %v-%v/%d and %v-%v/%d", a0, a1, ar, b0, b1, br)
	}
}

func TestNewRejectsBadSeat(t *testing.T) {
	if _, err := New(config.Default(), Options{Muted: true, Autopilot: []int{2}}); err == nil {
		t.Error("Expected error for out of range seat")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.FrameInterval = 0
	if _, err := New(cfg, Options{Muted: true}); err == nil {
		t.Error("Expected validation error")
	}
}

func TestRecordingName(t *testing.T) {
	name := RecordingName("abc")
	if !strings.HasPrefix(name, "vector-duel-abc") || filepath.Ext(name) != ".wav" {
		t.Errorf("Unexpected name %q", name)
	}
}
