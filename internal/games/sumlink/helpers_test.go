package sumlink

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/sumlink/internal/core"
)

// fixedBoard is the board number used for hand-built levels; generated
// boards start at 1, so the two never collide within a test.
const fixedBoard = 1000

// fixedLevel builds a level with known values (row-major) and targets.
func fixedLevel(number, size int, values, targets []int) *Level {
	lvl := &Level{
		Number:  number,
		Board:   fixedBoard,
		Size:    size,
		Cells:   make([]Cell, size*size),
		Targets: targets,
	}
	for i := range lvl.Cells {
		lvl.Cells[i] = Cell{
			ID:    CellID{Board: fixedBoard, Index: i},
			Value: values[i],
			Pos:   core.Pt(i%size, i/size),
		}
	}
	return lvl
}

// id returns the ID of the cell at (x, y) of a level.
func id(lvl *Level, x, y int) CellID {
	c, ok := lvl.CellAt(core.Pt(x, y))
	if !ok {
		panic("id: position outside level")
	}
	return c.ID
}

// level1Values is a 4x4 board whose top-left corner reads
//
//	4 5 .
//	1 . .
//
// so (0,0),(1,0),(0,1) are mutually adjacent and sum to 10.
var level1Values = []int{
	4, 5, 9, 9,
	1, 9, 9, 9,
	9, 9, 9, 9,
	9, 9, 9, 2,
}

// newTestSession creates a session with a seeded generator and installs lvl.
func newTestSession(t *testing.T, lvl *Level, delay time.Duration) *Session {
	t.Helper()
	gen := NewGenerator(DefaultGenParams(), rand.New(rand.NewSource(42)))
	s, err := NewSession(gen, SessionOptions{StartLevel: lvl.Number, AdvanceDelay: delay})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	s.install(lvl)
	return s
}
