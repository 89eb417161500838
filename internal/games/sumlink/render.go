package sumlink

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/sumlink/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		g.renderError(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

// renderError shows why the session could not start.
func (g *Game) renderError(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Cannot start Sum Link")
	if g.err != nil {
		dst.DrawTextCentered(y, g.err.Error())
	}
	dst.DrawTextCentered(y+2, "Press Q to quit")
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := MinScreen(g.session.Level().Size)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, please resize terminal", minW, minH))
}

// renderHUD draws level, score, target chips and the running sum.
func (g *Game) renderHUD(dst *core.Screen) {
	lvl := g.session.Level()

	dst.DrawTextCentered(0, "S U M   L I N K")
	dst.DrawTextColored(1, 0, fmt.Sprintf("Level %d", lvl.Number), core.ColorBrightCyan)
	score := fmt.Sprintf("Score: %d", g.session.Score())
	dst.DrawText(g.screenW-len(score)-1, 0, score)

	// Target chips, centered
	chips := make([]string, len(lvl.Targets))
	width := 0
	for i, t := range lvl.Targets {
		if g.session.Targets().Matched(t) {
			chips[i] = fmt.Sprintf("[✓%d]", t)
		} else {
			chips[i] = fmt.Sprintf("[%d]", t)
		}
		width += len([]rune(chips[i])) + 1
	}
	x := core.Max((g.screenW-width+1)/2, 0)
	for i, chip := range chips {
		color := core.ColorYellow
		if g.session.Targets().Matched(lvl.Targets[i]) {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(x, 1, chip, color)
		x += len([]rune(chip)) + 1
	}

	targets := g.session.Targets()
	dst.DrawText(1, 2, fmt.Sprintf("Found %d/%d", targets.Count(), targets.Total()))

	// Running sum
	tr := g.session.Tracker()
	if tr.Selecting() {
		sum := fmt.Sprintf("Sum: %d", tr.Sum())
		dst.DrawTextColored((g.screenW-len(sum))/2, 2, sum, core.ColorBrightCyan)
	}
}

// renderBoard draws the cells and the connectors of the current path.
func (g *Game) renderBoard(dst *core.Screen) {
	lvl := g.session.Level()
	tr := g.session.Tracker()
	path := tr.Path()

	// Connectors first so cells are never overdrawn
	for i := 1; i < len(path); i++ {
		a, _ := lvl.Cell(path[i-1])
		b, _ := lvl.Cell(path[i])
		if pos, glyph, ok := g.layout.Connector(a.Pos, b.Pos); ok {
			dst.SetColored(pos.X, pos.Y, glyph, core.ColorCyan)
		}
	}

	var last CellID
	if len(path) > 0 {
		last = path[len(path)-1]
	}

	for _, cell := range lvl.Cells {
		r := g.layout.CellRect(cell.Pos)
		text := fmt.Sprintf("( %d )", cell.Value)
		color := core.ColorWhite
		switch {
		case len(path) > 0 && cell.ID == last:
			text = fmt.Sprintf("[ %d ]", cell.Value)
			color = core.ColorBrightYellow
		case tr.Contains(cell.ID):
			text = fmt.Sprintf("[ %d ]", cell.Value)
			color = core.ColorBrightCyan
		case g.session.Pending():
			color = core.ColorGray
		}
		dst.DrawTextColored(r.X, r.Y, text, color)
	}
}

// renderFooter draws toasts and the control hints.
func (g *Game) renderFooter(dst *core.Screen) {
	toastY := g.screenH - 2
	if len(g.toasts) > 0 {
		texts := make([]string, len(g.toasts))
		for i, t := range g.toasts {
			texts[i] = t.text
		}
		line := strings.Join(texts, "  ")
		x := (g.screenW - len([]rune(line))) / 2
		for _, t := range g.toasts {
			dst.DrawTextColored(x, toastY, t.text, t.color)
			x += len([]rune(t.text)) + 2
		}
	} else if !g.session.Targets().Reachable() {
		hint := "Duplicate targets: press N for a new board"
		dst.DrawTextColored((g.screenW-len(hint))/2, toastY, hint, core.ColorOrange)
	}

	controls := g.Controls()
	dst.DrawTextColored((g.screenW-len(controls))/2, g.screenH-1, controls, core.ColorGray)
}

// renderOverlays draws the pause and level-complete boxes.
func (g *Game) renderOverlays(dst *core.Screen) {
	cx, cy := g.layout.Bounds().Center()

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
		return
	}

	if g.session.Pending() {
		lvl := g.session.Level()
		g.drawOverlay(dst, cx, cy,
			fmt.Sprintf("Level %d complete!", lvl.Number),
			fmt.Sprintf("Next: Level %d in %.1fs", lvl.Number+1, g.session.Remaining().Seconds()),
		)
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Drag: link | N: new | P: pause | Esc: menu | Q: quit"
}
