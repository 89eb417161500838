package sumlink

import "github.com/vovakirdan/sumlink/internal/core"

// Board geometry in terminal cells. Each grid cell is drawn as "( 7 )";
// the gap column and gap row between cells carry the path connectors.
const (
	cellWidth    = 5
	pitchX       = cellWidth + 1
	pitchY       = 2
	hudHeight    = 4 // Title, targets, running sum, spacer
	footerHeight = 3 // Spacer, toast line, controls

	minScreenWidth = 52 // Fits the HUD and control hints
)

// Layout maps grid positions to screen coordinates and back.
// Hit testing is the only place pixel (terminal cell) geometry is used;
// everything downstream works on grid coordinates.
type Layout struct {
	Origin core.Point // Screen position of cell (0,0)
	Size   int
}

// NewLayout centers a size x size board on a screen.
func NewLayout(screenW, screenH, size int) Layout {
	w, h := boardExtent(size)
	freeH := screenH - hudHeight - footerHeight
	return Layout{
		Origin: core.Pt(core.Max((screenW-w)/2, 0), hudHeight+core.Max((freeH-h)/2, 0)),
		Size:   size,
	}
}

// boardExtent returns the board width and height in terminal cells.
func boardExtent(size int) (int, int) {
	if size <= 0 {
		return 0, 0
	}
	return size*pitchX - 1, size*pitchY - 1
}

// MinScreen returns the smallest screen that fits a board of the given size.
func MinScreen(size int) (int, int) {
	w, h := boardExtent(size)
	return core.Max(w+2, minScreenWidth), h + hudHeight + footerHeight
}

// Bounds returns the board rectangle.
func (l Layout) Bounds() core.Rect {
	w, h := boardExtent(l.Size)
	return core.NewRect(l.Origin.X, l.Origin.Y, w, h)
}

// Area returns the board rectangle plus a one-cell margin. A drag that
// leaves it ends the gesture, like leaving the grid's padded container.
func (l Layout) Area() core.Rect {
	b := l.Bounds()
	return core.NewRect(b.X-2, b.Y-1, b.W+4, b.H+2)
}

// CellRect returns the screen rectangle of the cell at grid position p.
func (l Layout) CellRect(p core.Point) core.Rect {
	return core.NewRect(l.Origin.X+p.X*pitchX, l.Origin.Y+p.Y*pitchY, cellWidth, 1)
}

// HitTest returns the grid position under screen coordinate (x, y).
// Gaps between cells and anything outside the board hit nothing.
func (l Layout) HitTest(x, y int) (core.Point, bool) {
	if !l.Bounds().Contains(x, y) {
		return core.Point{}, false
	}
	dx, dy := x-l.Origin.X, y-l.Origin.Y
	if dx%pitchX >= cellWidth || dy%pitchY != 0 {
		return core.Point{}, false
	}
	return core.Pt(dx/pitchX, dy/pitchY), true
}

// Connector returns the screen position and glyph linking two adjacent
// grid cells, drawn in the gap between them.
func (l Layout) Connector(a, b core.Point) (core.Point, rune, bool) {
	if !a.Adjacent(b) {
		return core.Point{}, 0, false
	}
	// Normalize so a is above b, or left of b on the same row
	if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
		a, b = b, a
	}

	ra := l.CellRect(a)
	switch {
	case a.Y == b.Y: // Horizontal
		return core.Pt(ra.Right(), ra.Y), '─', true
	case a.X == b.X: // Vertical
		return core.Pt(ra.X+cellWidth/2, ra.Y+1), '│', true
	case b.X > a.X: // Down-right
		return core.Pt(ra.Right(), ra.Y+1), '╲', true
	default: // Down-left
		return core.Pt(ra.X-1, ra.Y+1), '╱', true
	}
}
