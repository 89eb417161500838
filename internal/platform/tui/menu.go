package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sumlink/internal/core"
	"github.com/vovakirdan/sumlink/internal/games/sumlink"
	"github.com/vovakirdan/sumlink/internal/storage"
)

// menuLevels is how many levels the level picker offers.
const menuLevels = 30

// MenuChoiceKind is what the player picked on the start screen.
type MenuChoiceKind int

const (
	MenuChoicePlay MenuChoiceKind = iota
	MenuChoiceScoreboard
	MenuChoiceQuit
)

// MenuChoice is the result of the start screen.
type MenuChoice struct {
	Kind  MenuChoiceKind
	Level int // Start level for MenuChoicePlay, 0 = config default
}

var menuEntries = []string{
	"Play",
	"Select level...",
	"High scores",
	"Quit",
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start screen and level picker.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	levels        []sumlink.LevelInfo
	highScore     int
	bestLevel     int
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	choice        *MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	params, _ := sumlink.ConfiguredParams() //nolint:errcheck // Game logs config errors on Reset
	m := MenuModel{
		levels:    params.Progression(menuLevels),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if store != nil {
		// Best-effort: the menu works without a scoreboard.
		m.highScore, _ = store.HighScore(sumlink.GameID) //nolint:errcheck
		m.bestLevel, _ = store.BestLevel(sumlink.GameID) //nolint:errcheck
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelect(action)
		}
		return m.handleMain(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleMain(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.choice = &MenuChoice{Kind: MenuChoiceQuit}
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.choice = &MenuChoice{Kind: MenuChoiceScoreboard}
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choice = &MenuChoice{Kind: MenuChoicePlay}
			return m, tea.Quit
		case 1:
			m.inLevelSelect = true
			m.levelCursor = 0
		case 2:
			m.choice = &MenuChoice{Kind: MenuChoiceScoreboard}
			return m, tea.Quit
		case 3:
			m.choice = &MenuChoice{Kind: MenuChoiceQuit}
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelSelect(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.choice = &MenuChoice{Kind: MenuChoiceQuit}
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionLeft:
		m.levelCursor = core.Max(m.levelCursor-5, 0)
	case MenuActionRight:
		m.levelCursor = core.Min(m.levelCursor+5, len(m.levels)-1)
	case MenuActionSelect:
		m.choice = &MenuChoice{Kind: MenuChoicePlay, Level: m.levels[m.levelCursor].Level}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != nil {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewMain()
}

func (m MenuModel) viewMain() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S U M   L I N K"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Drag across neighbouring cells to hit the target sums", m.width))
	b.WriteString("\n\n")

	for i, entry := range menuEntries {
		line := "  " + entry
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + entry)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.highScore > 0 {
		b.WriteString("\n")
		best := fmt.Sprintf("Best score: %d  |  Best level: %d", m.highScore, m.bestLevel)
		b.WriteString(centerText(menuDimStyle.Render(best), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	// Scroll window around the cursor
	visible := core.Clamp(m.height-8, 3, len(m.levels))
	start := core.Clamp(m.levelCursor-visible/2, 0, len(m.levels)-visible)

	for i := start; i < start+visible; i++ {
		info := m.levels[i]
		line := fmt.Sprintf("%2d. %dx%d grid, %d targets (%d-%d)",
			info.Level, info.Size, info.Size, info.TargetCount, info.TargetMin, info.TargetMax)
		if i == m.levelCursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Up/Down: Level  |  Left/Right: +/-5  |  Enter: Play  |  Esc: Back"), m.width))

	return b.String()
}

// Choice returns the player's choice, or nil while still choosing.
func (m MenuModel) Choice() *MenuChoice {
	return m.choice
}

// centerText centers text within given width. Width is measured without
// ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
