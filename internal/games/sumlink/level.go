// Package sumlink implements Sum Link, a drag-to-sum number puzzle.
// The player traces paths through adjacent cells to hit every target sum
// of a level, then moves on to a bigger, harder board.
package sumlink

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/vovakirdan/sumlink/internal/core"
)

// ErrInvalidLevel is returned when a level number below 1, or one whose
// target range would overflow, is requested.
var ErrInvalidLevel = errors.New("sumlink: level must be at least 1")

// CellID identifies a cell. Board is the generator's board sequence number,
// so IDs are never reused across levels or reshuffles.
type CellID struct {
	Board int
	Index int
}

// String returns a compact representation such as "b3-c12".
func (id CellID) String() string {
	return fmt.Sprintf("b%d-c%d", id.Board, id.Index)
}

// Cell is a single numbered grid slot. Immutable once generated.
type Cell struct {
	ID    CellID
	Value int
	Pos   core.Point // (column, row)
}

// Level is one playthrough configuration: grid size, cells and target sums.
// Levels are replaced wholesale on advance, never mutated.
type Level struct {
	Number  int
	Board   int
	Size    int
	Cells   []Cell // Size*Size entries, row-major
	Targets []int
}

// Cell returns the cell with the given ID, if it belongs to this level.
func (l *Level) Cell(id CellID) (Cell, bool) {
	if id.Board != l.Board || id.Index < 0 || id.Index >= len(l.Cells) {
		return Cell{}, false
	}
	return l.Cells[id.Index], true
}

// CellAt returns the cell at grid position p.
func (l *Level) CellAt(p core.Point) (Cell, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= l.Size || p.Y >= l.Size {
		return Cell{}, false
	}
	return l.Cells[p.Y*l.Size+p.X], true
}

// GenParams holds the constants of the level progression formula.
type GenParams struct {
	BaseSize  int // Grid side at level 0
	SizeEvery int // Grid grows by one every SizeEvery levels
	MaxSize   int

	BaseTargets  int // Target count at level 0
	TargetsEvery int // One more target every TargetsEvery levels
	MaxTargets   int

	MinValue int // Inclusive cell value range
	MaxValue int

	TargetFactor  int  // Targets drawn from [f*level, 2*f*level-1]
	UniqueTargets bool // Redraw duplicate targets
}

// DefaultGenParams returns the standard progression:
// size = min(4+level/2, 8), targets = min(3+level/3, 6),
// values in [1,9], targets in [10*level, 20*level-1], duplicates allowed.
func DefaultGenParams() GenParams {
	return GenParams{
		BaseSize:     4,
		SizeEvery:    2,
		MaxSize:      8,
		BaseTargets:  3,
		TargetsEvery: 3,
		MaxTargets:   6,
		MinValue:     1,
		MaxValue:     9,
		TargetFactor: 10,
	}
}

// LevelInfo describes the deterministic shape of a level.
type LevelInfo struct {
	Level       int
	Size        int
	TargetCount int
	TargetMin   int // Inclusive
	TargetMax   int // Inclusive
}

// MaxLevel returns the highest level whose target range fits in an int.
func (p GenParams) MaxLevel() int {
	return math.MaxInt / (2 * core.Max(p.TargetFactor, 1))
}

// Info returns the grid size, target count and target range for a level.
func (p GenParams) Info(level int) (LevelInfo, error) {
	if level < 1 {
		return LevelInfo{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	if level > p.MaxLevel() {
		return LevelInfo{}, fmt.Errorf("%w: got %d, max %d", ErrInvalidLevel, level, p.MaxLevel())
	}
	return LevelInfo{
		Level:       level,
		Size:        core.Min(p.BaseSize+level/p.SizeEvery, p.MaxSize),
		TargetCount: core.Min(p.BaseTargets+level/p.TargetsEvery, p.MaxTargets),
		TargetMin:   p.TargetFactor * level,
		TargetMax:   2*p.TargetFactor*level - 1,
	}, nil
}

// Progression returns LevelInfo for levels 1..n.
func (p GenParams) Progression(n int) []LevelInfo {
	infos := make([]LevelInfo, 0, n)
	for level := 1; level <= n; level++ {
		info, _ := p.Info(level) //nolint:errcheck // level >= 1
		infos = append(infos, info)
	}
	return infos
}

// Generator produces levels from a random source.
// It is not safe for concurrent use; each session owns one.
type Generator struct {
	params GenParams
	rng    *rand.Rand
	boards int
}

// NewGenerator creates a generator with the given params and random source.
func NewGenerator(params GenParams, rng *rand.Rand) *Generator {
	return &Generator{params: params, rng: rng}
}

// Generate builds a fresh Level for the given level number.
func (g *Generator) Generate(level int) (*Level, error) {
	info, err := g.params.Info(level)
	if err != nil {
		return nil, err
	}

	g.boards++
	lvl := &Level{
		Number:  level,
		Board:   g.boards,
		Size:    info.Size,
		Cells:   make([]Cell, info.Size*info.Size),
		Targets: make([]int, 0, info.TargetCount),
	}

	valueSpan := g.params.MaxValue - g.params.MinValue + 1
	for i := range lvl.Cells {
		lvl.Cells[i] = Cell{
			ID:    CellID{Board: lvl.Board, Index: i},
			Value: g.rng.Intn(valueSpan) + g.params.MinValue,
			Pos:   core.Pt(i%info.Size, i/info.Size),
		}
	}

	targetSpan := info.TargetMax - info.TargetMin + 1
	unique := g.params.UniqueTargets && targetSpan >= info.TargetCount
	for len(lvl.Targets) < info.TargetCount {
		t := g.rng.Intn(targetSpan) + info.TargetMin
		if unique && slices.Contains(lvl.Targets, t) {
			continue
		}
		lvl.Targets = append(lvl.Targets, t)
	}

	return lvl, nil
}
