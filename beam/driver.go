// Package beam defines the XY display primitives the renderer is built on
// and host-side drivers that capture or fan out the primitive call stream
package beam

import "time"

// Driver is the analog display surface
// SetBeam toggles the blank signal; the driver owns the settle guard around the transition
// MoveCursor writes both cursor channels from 8.8 fixed point coordinates
// Hold keeps the current beam state for d; bounded and brief
type Driver interface {
	SetBeam(on bool)
	MoveCursor(x, y int16)
	Hold(d time.Duration)
}

// DACCode maps an 8.8 coordinate to the center-justified 8-bit channel value (128 + c/256)
func DACCode(c int16) uint8 {
	return uint8(128 + int(c)/256)
}

// Point is a cursor position in DAC space (0..255 per axis)
type Point struct {
	X, Y uint8
}

// PointOf converts an 8.8 coordinate pair to DAC space
func PointOf(x, y int16) Point {
	return Point{X: DACCode(x), Y: DACCode(y)}
}

// Tee forwards every primitive call to each driver in order
type Tee []Driver

func (t Tee) SetBeam(on bool) {
	for _, d := range t {
		d.SetBeam(on)
	}
}

func (t Tee) MoveCursor(x, y int16) {
	for _, d := range t {
		d.MoveCursor(x, y)
	}
}

func (t Tee) Hold(d time.Duration) {
	for _, drv := range t {
		drv.Hold(d)
	}
}

// Discard is a driver that ignores all calls
type Discard struct{}

func (Discard) SetBeam(bool) {}

func (Discard) MoveCursor(int16, int16) {}

func (Discard) Hold(time.Duration) {}
