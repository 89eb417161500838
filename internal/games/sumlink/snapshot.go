package sumlink

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying       GameStateType = "playing"
	StateSelecting     GameStateType = "selecting"
	StateLevelComplete GameStateType = "level_complete"
	StatePaused        GameStateType = "paused"
	StatePausedSmall   GameStateType = "paused_small_window"
	StateError         GameStateType = "error"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Level   int
	Board   int
	Size    int
	Values  []int // Row-major cell values
	Targets []int
	Matched []int // In match order
	Path    []CellID
	Sum     int
	Score   int
	Found   int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.session == nil {
		return Snapshot{Tick: g.tick, State: StateError}
	}

	lvl := g.session.Level()
	tr := g.session.Tracker()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.session.Pending():
		state = StateLevelComplete
	case tr.Selecting():
		state = StateSelecting
	}

	values := make([]int, len(lvl.Cells))
	for i, c := range lvl.Cells {
		values[i] = c.Value
	}

	return Snapshot{
		Tick:    g.tick,
		Level:   lvl.Number,
		Board:   lvl.Board,
		Size:    lvl.Size,
		Values:  values,
		Targets: append([]int(nil), lvl.Targets...),
		Matched: g.session.Targets().Values(),
		Path:    tr.Path(),
		Sum:     tr.Sum(),
		Score:   g.session.Score(),
		Found:   g.session.Found(),
		State:   state,
	}
}
