package engine

import "github.com/lixenwraith/vector-duel/parameter"

// Score is a two-digit counter with a cached digit decomposition
// The zero value is a valid score of 0
type Score struct {
	value uint8
	left  uint8
	right uint8
}

// Value returns the counter
func (s Score) Value() int {
	return int(s.value)
}

// Digits returns the cached tens and units digits
func (s Score) Digits() (tens, units uint8) {
	return s.left, s.right
}

// Increment adds one point, wrapping past 99
func (s *Score) Increment() {
	s.value = uint8((int(s.value) + 1) % parameter.ScoreModulo)
	s.refresh()
}

// Reset sets the counter to zero
func (s *Score) Reset() {
	s.value = 0
	s.refresh()
}

func (s *Score) refresh() {
	s.left = s.value / 10
	s.right = s.value % 10
}
