package vmath

// LineTraverser implements a zero-allocation iterator over the cells of an integer line
// Uses Bresenham stepping; both endpoints are visited
type LineTraverser struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int
	dx, dy           int
	err              int

	started bool
	done    bool
}

// NewLineTraverser creates a new iterator from (x1, y1) to (x2, y2)
func NewLineTraverser(x1, y1, x2, y2 int) LineTraverser {
	t := LineTraverser{
		currX: x1, currY: y1,
		targetX: x2, targetY: y2,
		stepX: 1, stepY: 1,
	}

	t.dx = x2 - x1
	if t.dx < 0 {
		t.dx = -t.dx
		t.stepX = -1
	}
	t.dy = y2 - y1
	if t.dy < 0 {
		t.dy = -t.dy
		t.stepY = -1
	}
	// dy kept negative so err folds both axes
	t.dy = -t.dy
	t.err = t.dx + t.dy

	return t
}

// Next advances the traverser to the next cell
// Returns true if a valid cell is available via Pos()
func (t *LineTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.currX += t.stepX
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.currY += t.stepY
	}

	return true
}

// Pos returns the current cell coordinates
func (t *LineTraverser) Pos() (int, int) {
	return t.currX, t.currY
}
