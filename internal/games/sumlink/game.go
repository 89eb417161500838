package sumlink

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sumlink/internal/config"
	"github.com/vovakirdan/sumlink/internal/core"
	"github.com/vovakirdan/sumlink/internal/registry"
)

// GameID is the registry and score-table identifier of the game.
const GameID = "sumlink"

const maxToasts = 3

// Package-level settings applied by the CLI before a game is created.
var (
	settingsMu         sync.Mutex
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	gameLogger         *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard").
// Any other value falls back to the config's start level.
func SetDifficultyPreset(preset string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the starting level for the next Reset. 0 means use config.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	selectedStartLevel = level
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	gameLogger = l
}

// toast is a transient on-screen notification.
type toast struct {
	text  string
	color core.Color
	ttl   time.Duration
}

// Game adapts a Session to the platform: it turns pointer events into
// gesture calls, drives the level-advance delay from ticks, and renders.
type Game struct {
	cfg     config.SumlinkConfig
	rng     *rand.Rand
	session *Session
	logger  *log.Logger
	err     error // Set when the session could not be created

	startLevel int         // Per-instance start level, 0 = use package settings
	runLogger  *log.Logger // Per-instance logger, nil = use package settings

	layout  Layout
	screenW int
	screenH int
	tickDur time.Duration
	tick    uint64

	paused   bool
	tooSmall bool
	toasts   []toast
}

// New creates a new Sum Link game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sum Link"
}

// Reset starts a new run.
func (g *Game) Reset(rt core.RuntimeConfig) {
	settingsMu.Lock()
	path, preset, start, logger := configPath, difficultyPreset, selectedStartLevel, gameLogger
	selectedStartLevel = 0 // Reset after use
	settingsMu.Unlock()

	if g.runLogger != nil {
		logger = g.runLogger
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger

	cfg, err := config.LoadSumlink(path)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
	}
	config.ApplySumlinkPreset(&cfg, preset)
	if start > 0 {
		cfg.StartLevel = start
	}
	if g.startLevel > 0 {
		cfg.StartLevel = g.startLevel
	}
	g.cfg = cfg

	// Drop any pending advance from the previous run
	if g.session != nil {
		g.session.Cancel()
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.session, g.err = NewSession(NewGenerator(ParamsFromConfig(cfg), g.rng), SessionOptions{
		StartLevel:   cfg.StartLevel,
		AdvanceDelay: cfg.Timing.AdvanceDelay(),
		Logger:       g.logger,
	})
	if g.err != nil {
		g.logger.Error("cannot start session", "error", g.err)
	}

	tickRate := rt.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.tick = 0
	g.paused = false
	g.toasts = nil
	g.Resize(rt.ScreenW, rt.ScreenH)
}

// ConfiguredParams returns the generator params of the config selected
// with SetConfigPath. On error the defaults are returned with it.
func ConfiguredParams() (GenParams, error) {
	settingsMu.Lock()
	path := configPath
	settingsMu.Unlock()

	cfg, err := config.LoadSumlink(path)
	if err != nil {
		return DefaultGenParams(), err
	}
	return ParamsFromConfig(cfg), nil
}

// StartAt makes every following Reset of this game start at level.
// Unlike SetStartLevel it does not affect other games, so concurrent
// SSH sessions can pick levels independently.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// UseLogger makes every following Reset of this game log to l, so lines of
// one player's run carry that player's fields.
func (g *Game) UseLogger(l *log.Logger) {
	g.runLogger = l
}

// ParamsFromConfig converts a config to generator params.
func ParamsFromConfig(cfg config.SumlinkConfig) GenParams {
	return GenParams{
		BaseSize:      cfg.Grid.BaseSize,
		SizeEvery:     cfg.Grid.GrowEvery,
		MaxSize:       cfg.Grid.MaxSize,
		BaseTargets:   cfg.Targets.BaseCount,
		TargetsEvery:  cfg.Targets.GrowEvery,
		MaxTargets:    cfg.Targets.MaxCount,
		MinValue:      cfg.Values.Min,
		MaxValue:      cfg.Values.Max,
		TargetFactor:  cfg.Targets.Factor,
		UniqueTargets: cfg.Targets.Unique,
	}
}

// Resize adapts the layout to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.relayout()
}

// relayout recomputes the board position for the current level.
func (g *Game) relayout() {
	if g.session == nil {
		g.tooSmall = false
		return
	}
	size := g.session.Level().Size
	minW, minH := MinScreen(size)
	g.tooSmall = g.screenW < minW || g.screenH < minH
	g.layout = NewLayout(g.screenW, g.screenH, size)
	if g.tooSmall {
		g.notify(g.session.End())
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.notify(g.session.End())
		}
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionShuffle) {
		events, err := g.session.Reshuffle()
		switch {
		case errors.Is(err, ErrAdvancePending):
			g.pushToast("Next level on the way", core.ColorBrightYellow)
		case err != nil:
			g.logger.Error("cannot reshuffle", "error", err)
		}
		g.notify(events)
	}

	for _, ev := range in.Pointer {
		g.handlePointer(ev)
	}

	g.notify(g.session.Advance(g.tickDur))
	g.expireToasts()

	return core.StepResult{State: g.State()}
}

// handlePointer feeds one pointer event into the gesture tracker.
func (g *Game) handlePointer(ev core.PointerEvent) {
	switch ev.Kind {
	case core.PointerDown:
		if cell, ok := g.cellAt(ev.X, ev.Y); ok {
			g.session.Begin(cell.ID)
		}
	case core.PointerMove:
		if !g.session.Tracker().Selecting() {
			return
		}
		if !g.layout.Area().Contains(ev.X, ev.Y) {
			g.notify(g.session.End())
			return
		}
		if cell, ok := g.cellAt(ev.X, ev.Y); ok {
			g.session.Enter(cell.ID)
		}
	case core.PointerUp, core.PointerCancel:
		g.notify(g.session.End())
	}
}

// cellAt returns the cell under a screen coordinate.
func (g *Game) cellAt(x, y int) (Cell, bool) {
	p, ok := g.layout.HitTest(x, y)
	if !ok {
		return Cell{}, false
	}
	return g.session.Level().CellAt(p)
}

// notify turns session events into toasts.
func (g *Game) notify(events []Event) {
	for _, ev := range events {
		switch ev.Kind {
		case EventTargetFound:
			g.pushToast(fmt.Sprintf("Found %d!", ev.Value), core.ColorBrightGreen)
		case EventLevelComplete:
			g.pushToast("Level Complete!", core.ColorBrightYellow)
		case EventLevelStarted:
			g.relayout()
			g.pushToast(fmt.Sprintf("Level %d", ev.Level), core.ColorBrightCyan)
		}
	}
}

func (g *Game) pushToast(text string, color core.Color) {
	g.toasts = append(g.toasts, toast{text: text, color: color, ttl: g.cfg.Timing.ToastDuration()})
	if len(g.toasts) > maxToasts {
		g.toasts = g.toasts[len(g.toasts)-maxToasts:]
	}
}

func (g *Game) expireToasts() {
	kept := g.toasts[:0]
	for _, t := range g.toasts {
		t.ttl -= g.tickDur
		if t.ttl > 0 {
			kept = append(kept, t)
		}
	}
	g.toasts = kept
}

// Close cancels a pending level advance. Called when the player leaves.
func (g *Game) Close() {
	if g.session != nil {
		g.session.Cancel()
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:  g.session.Score(),
		Level:  g.session.Level().Number,
		Paused: g.paused || g.tooSmall,
	}
}
