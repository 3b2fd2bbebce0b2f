package parameter

import "time"

// Hosted Loop Timing
const (
	// FrameUpdateInterval is the fixed tick of hosted frontends (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// KeyHoldWindow is how long a terminal key counts as held after its last event
	KeyHoldWindow = 120 * time.Millisecond

	// KeyRepeatDelay is how long a fresh fire press counts as held; it outlasts the
	// usual ~500ms terminal auto-repeat delay so a held key cannot read as a second press
	// Tapping fire faster than this merges the taps into one shot
	KeyRepeatDelay = 550 * time.Millisecond

	// EventQueueSize buffers polled terminal events
	EventQueueSize = 256
)

// Phosphor
const (
	// PhosphorDecay is the per-frame brightness multiplier of lit cells
	PhosphorDecay = 0.6

	// PhosphorFloor is the brightness below which a cell is cleared
	PhosphorFloor = 0.05
)

// Window Scope
const (
	// WindowSize is the default window edge in pixels, square like a scope face
	WindowSize = 768

	// BeamWidth is the stroke width in pixels at WindowSize
	BeamWidth = 2.0

	// DACRange is the span of one cursor DAC axis
	DACRange = 256
)

// Attract Mode
const (
	// AutopilotHoldFrames is how many frames an autopilot keeps one choice
	AutopilotHoldFrames = 24
)

// Audio
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Recording
const (
	// RecordSampleRate is the WAV sample rate of the beam trace
	RecordSampleRate = 96000

	// RecordBitDepth is the WAV sample width
	RecordBitDepth = 16
)
