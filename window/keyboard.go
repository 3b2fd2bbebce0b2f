package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vector-duel/input"
)

// keyAliases covers names shared with the terminal frontend that ebiten spells differently
var keyAliases = map[string]ebiten.Key{
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"enter":     ebiten.KeyEnter,
	"space":     ebiten.KeySpace,
	"escape":    ebiten.KeyEscape,
	"page_up":   ebiten.KeyPageUp,
	"page_down": ebiten.KeyPageDown,
}

// parseKeyName resolves a config key name to an ebiten key
func parseKeyName(name string) (ebiten.Key, error) {
	lower := strings.ToLower(name)
	if k, ok := keyAliases[lower]; ok {
		return k, nil
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(lower)); err != nil {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return k, nil
}

// Keyboard is an input.Sampler polled from ebiten's key state once per Update
// Windows report real releases, so no hold window is needed
type Keyboard struct {
	bindings map[ebiten.Key]input.Button
	pressed  map[input.Button]bool
	isDown   func(ebiten.Key) bool
}

// NewKeyboard resolves bindings into a sampler
func NewKeyboard(b input.Bindings) (*Keyboard, error) {
	resolved, err := b.Resolve()
	if err != nil {
		return nil, err
	}

	k := &Keyboard{
		bindings: make(map[ebiten.Key]input.Button, len(resolved)),
		pressed:  make(map[input.Button]bool),
		isDown:   ebiten.IsKeyPressed,
	}
	for _, rb := range resolved {
		key, err := parseKeyName(rb.Key)
		if err != nil {
			return nil, fmt.Errorf("player %d %s: %w", rb.Button.Player+1, rb.Button.Control, err)
		}
		if prev, dup := k.bindings[key]; dup {
			return nil, fmt.Errorf("key %q collides with player %d %s", rb.Key, prev.Player+1, prev.Control)
		}
		k.bindings[key] = rb.Button
	}
	return k, nil
}

// Poll snapshots every bound key
func (k *Keyboard) Poll() {
	for b := range k.pressed {
		k.pressed[b] = false
	}
	for key, b := range k.bindings {
		if k.isDown(key) {
			k.pressed[b] = true
		}
	}
}

// IsPressed implements input.Sampler
func (k *Keyboard) IsPressed(b input.Button) bool {
	return k.pressed[b]
}
