package record

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"

	"github.com/lixenwraith/vector-duel/beam"
	"github.com/lixenwraith/vector-duel/render"
	"github.com/lixenwraith/vector-duel/vmath"
)

var _ beam.Driver = (*WAVRecorder)(nil)

func decode(t *testing.T, path string) (*wav.Decoder, []int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("Expected a valid wav file")
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}
	return dec, buf.Data
}

func TestRecorderWritesXY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.wav")
	r, err := Create(path, Options{SampleRate: 8000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	r.MoveCursor(100, -200)
	r.SetBeam(true)
	r.MoveCursor(-300, 400)
	r.SetBeam(false)

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec, data := decode(t, path)
	if dec.NumChans != 2 || dec.BitDepth != 16 || dec.SampleRate != 8000 {
		t.Fatalf("Unexpected format: %d ch, %d bit, %d Hz", dec.NumChans, dec.BitDepth, dec.SampleRate)
	}
	want := []int{100, -200, -300, 400}
	if len(data) != len(want) {
		t.Fatalf("Expected %d values, got %d", len(want), len(data))
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("value %d: expected %d, got %d", i, want[i], data[i])
		}
	}
}

func TestRecorderBlankToCenter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blank.wav")
	r, err := Create(path, Options{SampleRate: 8000, BlankToCenter: true})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	r.MoveCursor(1000, 1000) // dark retrace
	r.SetBeam(true)
	r.Hold(time.Millisecond) // 8 samples at 8 kHz
	r.SetBeam(false)
	r.Hold(time.Millisecond) // dark hold writes nothing

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	_, data := decode(t, path)
	if len(data) != 2*9 {
		t.Fatalf("Expected 9 frames, got %d values", len(data))
	}
	if data[0] != 0 || data[1] != 0 {
		t.Errorf("Expected blanked move at origin, got (%d,%d)", data[0], data[1])
	}
	for i := 2; i < len(data); i += 2 {
		if data[i] != 1000 || data[i+1] != 1000 {
			t.Fatalf("frame %d: expected dwell at cursor, got (%d,%d)", i/2, data[i], data[i+1])
		}
	}
}

func TestRecorderPaintedFrame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.wav")
	r, err := Create(path, Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	p := render.NewPainter(r, 0)
	p.PaintLine(vmath.Vec2{X: -1024, Y: 0}, vmath.Vec2{X: 1024, Y: 0})

	// move to a, 16 samples, move to b
	if r.Frames() != 18 {
		t.Errorf("Expected 18 frames, got %d", r.Frames())
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed on second Close, got %v", err)
	}

	_, data := decode(t, path)
	if len(data) != 36 {
		t.Fatalf("Expected 36 values, got %d", len(data))
	}
	if data[0] != -1024 || data[len(data)-2] != 1024 {
		t.Errorf("Expected line endpoints, got %d .. %d", data[0], data[len(data)-2])
	}
}

func TestRecorderLargeFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.wav")
	r, err := Create(path, Options{SampleRate: 8000})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	r.SetBeam(true)
	for i := 0; i < chunkFrames*3+5; i++ {
		r.MoveCursor(int16(i), int16(-i))
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_, data := decode(t, path)
	if len(data) != 2*(chunkFrames*3+5) {
		t.Fatalf("Expected %d values, got %d", 2*(chunkFrames*3+5), len(data))
	}
	last := chunkFrames*3 + 4
	if data[2*last] != last || data[2*last+1] != -last {
		t.Errorf("Unexpected last frame (%d,%d)", data[2*last], data[2*last+1])
	}
}
