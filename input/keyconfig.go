package input

import (
	"fmt"
	"sort"
)

// KeyNames binds frontend key names to each control of one seat
// Names are resolved by the frontend (tcell or ebiten key tables)
type KeyNames map[string][]string

// Bindings holds key names per seat, index = player
type Bindings [PlayerCount]KeyNames

// DefaultBindings returns the stock layout: WASD-style for seat 0, arrows for seat 1
func DefaultBindings() Bindings {
	return Bindings{
		{
			"left":       {"a"},
			"right":      {"d"},
			"accelerate": {"w"},
			"fire":       {"s", "space"},
		},
		{
			"left":       {"left"},
			"right":      {"right"},
			"accelerate": {"up"},
			"fire":       {"down", "enter"},
		},
	}
}

// Binding is one resolved key name to button mapping
type Binding struct {
	Key    string
	Button Button
}

// Resolve flattens bindings into key→button pairs
// Returns error on unknown control names or a key bound twice
func (b Bindings) Resolve() ([]Binding, error) {
	seen := make(map[string]Button)
	var out []Binding

	for player, names := range b {
		controls := make([]string, 0, len(names))
		for name := range names {
			controls = append(controls, name)
		}
		sort.Strings(controls)

		for _, name := range controls {
			ctl, err := ParseControl(name)
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", player+1, err)
			}
			btn := Button{Player: player, Control: ctl}
			for _, key := range names[name] {
				if prev, dup := seen[key]; dup {
					return nil, fmt.Errorf("key %q bound to both player %d %s and player %d %s",
						key, prev.Player+1, prev.Control, player+1, ctl)
				}
				seen[key] = btn
				out = append(out, Binding{Key: key, Button: btn})
			}
		}
	}
	return out, nil
}
