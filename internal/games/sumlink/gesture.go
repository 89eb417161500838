package sumlink

import "slices"

// GestureState is the state of the selection tracker.
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureSelecting
)

// String returns a human-readable name for the state.
func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "idle"
	case GestureSelecting:
		return "selecting"
	default:
		return "unknown"
	}
}

// Tracker recognizes one drag gesture as a path through adjacent cells
// and accumulates the running sum of their values.
//
// Only one gesture is tracked at a time: Begin is ignored while selecting.
// Re-entering a cell already on the path does nothing (no backtracking).
type Tracker struct {
	level *Level
	state GestureState
	path  []CellID
	sum   int
}

// NewTracker creates an idle tracker bound to a level.
func NewTracker(level *Level) *Tracker {
	return &Tracker{level: level}
}

// Reset binds the tracker to a new level and drops any gesture in progress.
func (t *Tracker) Reset(level *Level) {
	t.level = level
	t.clear()
}

// State returns the current gesture state.
func (t *Tracker) State() GestureState {
	return t.state
}

// Selecting reports whether a gesture is in progress.
func (t *Tracker) Selecting() bool {
	return t.state == GestureSelecting
}

// Begin starts a gesture on the given cell. Returns false if ignored.
func (t *Tracker) Begin(id CellID) bool {
	if t.state != GestureIdle || t.level == nil {
		return false
	}
	cell, ok := t.level.Cell(id)
	if !ok {
		return false
	}

	t.state = GestureSelecting
	t.path = append(t.path[:0], id)
	t.sum = cell.Value
	return true
}

// Enter extends the path with the given cell if it is adjacent to the
// last selected cell and not already selected. Returns false if ignored.
func (t *Tracker) Enter(id CellID) bool {
	if t.state != GestureSelecting || t.Contains(id) {
		return false
	}
	cell, ok := t.level.Cell(id)
	if !ok {
		return false
	}
	last, _ := t.level.Cell(t.path[len(t.path)-1])
	if !last.Pos.Adjacent(cell.Pos) {
		return false
	}

	t.path = append(t.path, id)
	t.sum += cell.Value
	return true
}

// End finishes the gesture and returns its sum. When no gesture is
// active it returns (0, false) and does nothing.
func (t *Tracker) End() (int, bool) {
	if t.state != GestureSelecting {
		return 0, false
	}
	sum := t.sum
	t.clear()
	return sum, true
}

// Contains reports whether the cell is on the current path.
func (t *Tracker) Contains(id CellID) bool {
	return slices.Contains(t.path, id)
}

// Path returns a copy of the selected cell IDs in order.
func (t *Tracker) Path() []CellID {
	return append([]CellID(nil), t.path...)
}

// Sum returns the running sum of the current path.
func (t *Tracker) Sum() int {
	return t.sum
}

func (t *Tracker) clear() {
	t.state = GestureIdle
	t.path = t.path[:0]
	t.sum = 0
}
