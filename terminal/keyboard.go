package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vector-duel/input"
	"github.com/lixenwraith/vector-duel/parameter"
)

// Keyboard is an input.Sampler fed by tcell key events
// Terminals report presses and auto-repeats but never releases, so a button
// counts as held until hold has passed since its last event
// A fresh fire press holds for at least repeatDelay, bridging the gap before
// auto-repeat starts
// Not safe for concurrent use; feed events from the loop that steps the match
type Keyboard struct {
	bindings map[keySpec]input.Button
	until    map[input.Button]time.Time
	hold     time.Duration
	now      func() time.Time

	repeatDelay time.Duration
}

// NewKeyboard resolves bindings into a sampler
func NewKeyboard(b input.Bindings, hold time.Duration) (*Keyboard, error) {
	resolved, err := b.Resolve()
	if err != nil {
		return nil, err
	}

	k := &Keyboard{
		bindings: make(map[keySpec]input.Button, len(resolved)),
		until:    make(map[input.Button]time.Time),
		hold:     hold,
		now:      time.Now,

		repeatDelay: parameter.KeyRepeatDelay,
	}
	for _, rb := range resolved {
		spec, err := parseKeyName(rb.Key)
		if err != nil {
			return nil, fmt.Errorf("player %d %s: %w", rb.Button.Player+1, rb.Button.Control, err)
		}
		if prev, dup := k.bindings[spec]; dup {
			return nil, fmt.Errorf("key %q collides with player %d %s", rb.Key, prev.Player+1, prev.Control)
		}
		k.bindings[spec] = rb.Button
	}
	return k, nil
}

// HandleEvent records a key event, returns false for unbound keys
func (k *Keyboard) HandleEvent(ev *tcell.EventKey) bool {
	btn, ok := k.bindings[specOf(ev)]
	if !ok {
		return false
	}

	now := k.now()
	window := k.hold
	if btn.Control == input.ControlFire && !k.IsPressed(btn) && k.repeatDelay > window {
		window = k.repeatDelay
	}
	if deadline := now.Add(window); deadline.After(k.until[btn]) {
		k.until[btn] = deadline
	}
	return true
}

// IsPressed implements input.Sampler
func (k *Keyboard) IsPressed(b input.Button) bool {
	deadline, ok := k.until[b]
	if !ok {
		return false
	}
	return k.now().Before(deadline)
}
