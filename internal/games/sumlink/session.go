package sumlink

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// ErrAdvancePending is returned by Reshuffle while the completed level is
// waiting for its advance.
var ErrAdvancePending = errors.New("sumlink: level advance pending")

// DefaultAdvanceDelay is the pause between "level complete" and the next level.
const DefaultAdvanceDelay = time.Second

// EventKind classifies session notifications.
type EventKind int

const (
	EventTargetFound   EventKind = iota // Value holds the matched sum
	EventLevelComplete                  // All targets of Level matched
	EventLevelStarted                   // A new board for Level is in play
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventTargetFound:
		return "target_found"
	case EventLevelComplete:
		return "level_complete"
	case EventLevelStarted:
		return "level_started"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by the session for the UI layer.
type Event struct {
	Kind  EventKind
	Level int
	Value int
}

// SessionOptions configures a new Session.
type SessionOptions struct {
	StartLevel   int           // First level number, must be >= 1
	AdvanceDelay time.Duration // Zero means DefaultAdvanceDelay
	Logger       *log.Logger   // Nil discards logs
}

// Session is the game controller: it owns the current level, the gesture
// tracker and the completion set, and advances to the next level once every
// target is matched.
//
// All methods run on the caller's goroutine. The level advance is deferred
// by AdvanceDelay and driven by Advance, so there is no timer to leak;
// Cancel drops a pending advance.
type Session struct {
	gen     *Generator
	level   *Level
	targets *Targets
	tracker *Tracker
	logger  *log.Logger

	delay     time.Duration
	pending   bool
	remaining time.Duration

	score   int // Sum of matched target values
	found   int // Matched targets over the run
	cleared int // Completed levels over the run
}

// NewSession creates a session and generates its first level.
func NewSession(gen *Generator, opts SessionOptions) (*Session, error) {
	if opts.AdvanceDelay <= 0 {
		opts.AdvanceDelay = DefaultAdvanceDelay
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		gen:     gen,
		tracker: NewTracker(nil),
		logger:  opts.Logger,
		delay:   opts.AdvanceDelay,
	}

	if err := s.load(opts.StartLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// load generates and installs a board for the given level number.
func (s *Session) load(number int) error {
	lvl, err := s.gen.Generate(number)
	if err != nil {
		return fmt.Errorf("sumlink: cannot generate level %d: %w", number, err)
	}

	s.install(lvl)
	return nil
}

// install puts a level in play with an empty completion set.
func (s *Session) install(lvl *Level) {
	s.level = lvl
	s.targets = NewTargets(lvl.Targets)
	s.tracker.Reset(lvl)

	s.logger.Debug("level started",
		"level", lvl.Number,
		"board", lvl.Board,
		"size", lvl.Size,
		"targets", lvl.Targets,
	)
	if !s.targets.Reachable() {
		s.logger.Warn("duplicate targets make level unreachable",
			"level", lvl.Number,
			"targets", lvl.Targets,
		)
	}
}

// Level returns the level in play.
func (s *Session) Level() *Level {
	return s.level
}

// Targets returns the completion set of the level in play.
func (s *Session) Targets() *Targets {
	return s.targets
}

// Tracker returns the gesture tracker.
func (s *Session) Tracker() *Tracker {
	return s.tracker
}

// Begin starts a gesture on a cell. Ignored while a level advance is pending,
// like Reshuffle.
func (s *Session) Begin(id CellID) bool {
	if s.pending {
		return false
	}
	return s.tracker.Begin(id)
}

// Enter extends the current gesture.
func (s *Session) Enter(id CellID) bool {
	return s.tracker.Enter(id)
}

// End finishes the current gesture and submits its sum.
func (s *Session) End() []Event {
	sum, ok := s.tracker.End()
	if !ok {
		return nil
	}
	return s.Submit(sum)
}

// Submit checks a sum against the unmatched targets.
// Non-matching sums are silently ignored.
func (s *Session) Submit(sum int) []Event {
	if s.pending || !s.targets.Match(sum) {
		return nil
	}

	s.score += sum
	s.found++
	events := []Event{{Kind: EventTargetFound, Level: s.level.Number, Value: sum}}
	s.logger.Info("target found", "level", s.level.Number, "value", sum)

	if s.targets.Complete() {
		s.cleared++
		s.pending = true
		s.remaining = s.delay
		events = append(events, Event{Kind: EventLevelComplete, Level: s.level.Number})
		s.logger.Info("level complete", "level", s.level.Number, "next_in", s.delay)
	}
	return events
}

// Advance moves the deferred level advance forward by dt. When the delay
// has elapsed the next level is generated and EventLevelStarted is returned.
func (s *Session) Advance(dt time.Duration) []Event {
	if !s.pending {
		return nil
	}
	s.remaining -= dt
	if s.remaining > 0 {
		return nil
	}

	s.pending = false
	s.remaining = 0
	if err := s.load(s.level.Number + 1); err != nil {
		s.logger.Error("cannot advance level", "error", err)
		return nil
	}
	return []Event{{Kind: EventLevelStarted, Level: s.level.Number}}
}

// Pending reports whether a level advance is scheduled.
func (s *Session) Pending() bool {
	return s.pending
}

// Remaining returns the time left before a pending advance.
func (s *Session) Remaining() time.Duration {
	return s.remaining
}

// Cancel drops a pending level advance and any gesture in progress.
// Returns true if an advance was cancelled.
func (s *Session) Cancel() bool {
	s.tracker.End()
	if !s.pending {
		return false
	}
	s.pending = false
	s.remaining = 0
	s.logger.Debug("level advance cancelled", "level", s.level.Number)
	return true
}

// Reshuffle deals a new board for the current level number and resets the
// completion set. While an advance is pending the board is kept and
// ErrAdvancePending is returned.
func (s *Session) Reshuffle() ([]Event, error) {
	if s.pending {
		return nil, ErrAdvancePending
	}
	if err := s.load(s.level.Number); err != nil {
		return nil, err
	}
	return []Event{{Kind: EventLevelStarted, Level: s.level.Number}}, nil
}

// Score returns the sum of all matched target values in this run.
func (s *Session) Score() int {
	return s.score
}

// Found returns how many targets were matched in this run.
func (s *Session) Found() int {
	return s.found
}

// Cleared returns how many levels were completed in this run.
func (s *Session) Cleared() int {
	return s.cleared
}
