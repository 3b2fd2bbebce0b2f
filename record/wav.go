// Package record writes the beam trace to disk as XY audio
// Played back into an oscilloscope in XY mode the file redraws the game
package record

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/lixenwraith/vector-duel/parameter"
)

// chunkFrames is the number of stereo frames buffered before an encoder write
const chunkFrames = 4096

// ErrClosed is returned by Close on a recorder that is already closed
var ErrClosed = errors.New("recorder closed")

// Options configures a WAVRecorder
type Options struct {
	SampleRate int

	// BlankToCenter writes beam-off moves at the origin so retrace stays invisible
	BlankToCenter bool
}

// WAVRecorder is a beam.Driver that turns each cursor move into one stereo 16-bit sample
// Left carries X and right carries Y; a lit Hold repeats the current sample for its duration
// Write errors are sticky and surface from Close
type WAVRecorder struct {
	enc    *wav.Encoder
	closer io.Closer
	opts   Options

	buf *audio.IntBuffer
	x   int16
	y   int16
	lit bool

	frames int
	err    error
	closed bool
}

// Create opens path and records into it
func Create(path string, opts Options) (*WAVRecorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording: %w", err)
	}
	r := New(f, opts)
	r.closer = f
	return r, nil
}

// New records into w; the WAV header is finalised on Close
func New(w io.WriteSeeker, opts Options) *WAVRecorder {
	if opts.SampleRate <= 0 {
		opts.SampleRate = parameter.RecordSampleRate
	}
	return &WAVRecorder{
		enc:  wav.NewEncoder(w, opts.SampleRate, parameter.RecordBitDepth, 2, 1),
		opts: opts,
		buf: &audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 2, SampleRate: opts.SampleRate},
			Data:           make([]int, 0, chunkFrames*2),
			SourceBitDepth: parameter.RecordBitDepth,
		},
	}
}

func (r *WAVRecorder) SetBeam(on bool) {
	r.lit = on
}

func (r *WAVRecorder) MoveCursor(x, y int16) {
	r.x, r.y = x, y
	if !r.lit && r.opts.BlankToCenter {
		r.emit(0, 0)
		return
	}
	r.emit(x, y)
}

func (r *WAVRecorder) Hold(d time.Duration) {
	if !r.lit {
		return
	}
	n := int(d * time.Duration(r.opts.SampleRate) / time.Second)
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		r.emit(r.x, r.y)
	}
}

// Frames returns the number of stereo frames recorded
func (r *WAVRecorder) Frames() int {
	return r.frames
}

// Close flushes buffered samples and finalises the file
func (r *WAVRecorder) Close() error {
	if r.closed {
		return ErrClosed
	}
	r.closed = true

	r.flush()
	if err := r.enc.Close(); err != nil && r.err == nil {
		r.err = fmt.Errorf("finalise wav: %w", err)
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && r.err == nil {
			r.err = fmt.Errorf("close recording: %w", err)
		}
	}
	return r.err
}

func (r *WAVRecorder) emit(x, y int16) {
	if r.err != nil || r.closed {
		return
	}
	r.buf.Data = append(r.buf.Data, int(x), int(y))
	r.frames++
	if len(r.buf.Data) >= chunkFrames*2 {
		r.flush()
	}
}

func (r *WAVRecorder) flush() {
	if len(r.buf.Data) == 0 || r.err != nil {
		return
	}
	if err := r.enc.Write(r.buf); err != nil {
		r.err = fmt.Errorf("write wav: %w", err)
	}
	r.buf.Data = r.buf.Data[:0]
}
