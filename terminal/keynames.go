package terminal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// nameToKey maps config key names to tcell special keys
// Single printable characters and "space" resolve to runes instead
var nameToKey = map[string]tcell.Key{
	"escape":    tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"delete":    tcell.KeyDelete,

	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"page_up":   tcell.KeyPgUp,
	"page_down": tcell.KeyPgDn,
	"insert":    tcell.KeyInsert,

	"f1":  tcell.KeyF1,
	"f2":  tcell.KeyF2,
	"f3":  tcell.KeyF3,
	"f4":  tcell.KeyF4,
	"f5":  tcell.KeyF5,
	"f6":  tcell.KeyF6,
	"f7":  tcell.KeyF7,
	"f8":  tcell.KeyF8,
	"f9":  tcell.KeyF9,
	"f10": tcell.KeyF10,
	"f11": tcell.KeyF11,
	"f12": tcell.KeyF12,
}

// keySpec is a resolved key name: a special key, or KeyRune with its rune
type keySpec struct {
	key tcell.Key
	ch  rune
}

// parseKeyName resolves a config key name
// Letters are case-insensitive so Shift or Caps Lock do not break a binding
func parseKeyName(name string) (keySpec, error) {
	lower := strings.ToLower(name)
	if lower == "space" {
		return keySpec{key: tcell.KeyRune, ch: ' '}, nil
	}
	if k, ok := nameToKey[lower]; ok {
		return keySpec{key: k}, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(lower)
		return keySpec{key: tcell.KeyRune, ch: r}, nil
	}
	return keySpec{}, fmt.Errorf("unknown key name %q", name)
}

// specOf normalizes a key event to its lookup form
func specOf(ev *tcell.EventKey) keySpec {
	if ev.Key() == tcell.KeyRune {
		return keySpec{key: tcell.KeyRune, ch: toLower(ev.Rune())}
	}
	return keySpec{key: ev.Key()}
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
