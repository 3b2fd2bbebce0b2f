package input

import "fmt"

// PlayerCount is the number of seats
const PlayerCount = 2

// Control is one logical per-player input
type Control uint8

const (
	ControlLeft Control = iota
	ControlRight
	ControlAccelerate
	ControlFire

	controlCount
)

// Button identifies a control of one seat
type Button struct {
	Player  int
	Control Control
}

// Sampler reads the instantaneous state of a logical button
type Sampler interface {
	IsPressed(b Button) bool
}

// Controls is one frame's snapshot of a seat's buttons
type Controls struct {
	Left       bool
	Right      bool
	Accelerate bool
	Fire       bool
}

// Sample reads all four controls of a seat
func Sample(s Sampler, player int) Controls {
	return Controls{
		Left:       s.IsPressed(Button{Player: player, Control: ControlLeft}),
		Right:      s.IsPressed(Button{Player: player, Control: ControlRight}),
		Accelerate: s.IsPressed(Button{Player: player, Control: ControlAccelerate}),
		Fire:       s.IsPressed(Button{Player: player, Control: ControlFire}),
	}
}

// Released is a sampler with every button up
type Released struct{}

func (Released) IsPressed(Button) bool { return false }

// controlNames maps canonical control names used in key config
var controlNames = map[string]Control{
	"left":       ControlLeft,
	"right":      ControlRight,
	"accelerate": ControlAccelerate,
	"fire":       ControlFire,
}

func (c Control) String() string {
	for name, ctl := range controlNames {
		if ctl == c {
			return name
		}
	}
	return fmt.Sprintf("control(%d)", uint8(c))
}

// ParseControl resolves a config control name
func ParseControl(name string) (Control, error) {
	c, ok := controlNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown control %q", name)
	}
	return c, nil
}

// AllButtons lists every button in seat-major order
func AllButtons() []Button {
	out := make([]Button, 0, PlayerCount*int(controlCount))
	for p := 0; p < PlayerCount; p++ {
		for c := Control(0); c < controlCount; c++ {
			out = append(out, Button{Player: p, Control: c})
		}
	}
	return out
}
