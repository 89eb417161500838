package sumlink

import (
	"errors"
	"math/rand"
	"testing"
	"time"
)

func kinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, e := range events {
		out[i] = e.Kind
	}
	return out
}

func TestSessionStartsAtRequestedLevel(t *testing.T) {
	gen := NewGenerator(DefaultGenParams(), rand.New(rand.NewSource(3)))
	s, err := NewSession(gen, SessionOptions{StartLevel: 1})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	lvl := s.Level()
	if lvl.Number != 1 || lvl.Size != 4 || len(lvl.Targets) != 3 {
		t.Errorf("level = %d size %d targets %v", lvl.Number, lvl.Size, lvl.Targets)
	}
	for _, target := range lvl.Targets {
		if target < 10 || target > 19 {
			t.Errorf("level 1 target %d outside [10,19]", target)
		}
	}
	if s.Targets().Count() != 0 {
		t.Error("a new level starts with an empty completion set")
	}
}

func TestSessionInvalidStartLevel(t *testing.T) {
	gen := NewGenerator(DefaultGenParams(), rand.New(rand.NewSource(3)))
	_, err := NewSession(gen, SessionOptions{StartLevel: 0})
	if !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("NewSession(level 0) error = %v, want ErrInvalidLevel", err)
	}
}

// Three mutually adjacent cells 4, 5, 1 produce 10, which is a target.
func TestSessionTargetFound(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10, 13, 17})
	s := newTestSession(t, lvl, time.Second)

	s.Begin(id(lvl, 0, 0))
	s.Enter(id(lvl, 1, 0))
	s.Enter(id(lvl, 0, 1))
	if s.Tracker().Sum() != 10 {
		t.Fatalf("running sum = %d, want 10", s.Tracker().Sum())
	}

	events := s.End()
	if len(events) != 1 || events[0].Kind != EventTargetFound || events[0].Value != 10 {
		t.Fatalf("End() events = %+v, want one target_found(10)", events)
	}
	if !s.Targets().Matched(10) || s.Targets().Count() != 1 {
		t.Errorf("completion set = %v, want {10}", s.Targets().Values())
	}
	if s.Score() != 10 || s.Found() != 1 {
		t.Errorf("score %d found %d, want 10 and 1", s.Score(), s.Found())
	}

	// Matching the same value again is silent.
	s.Begin(id(lvl, 0, 0))
	s.Enter(id(lvl, 1, 0))
	s.Enter(id(lvl, 0, 1))
	if events := s.End(); events != nil {
		t.Errorf("repeat match emitted %+v", events)
	}
	if s.Score() != 10 {
		t.Errorf("score = %d after a repeat, want 10", s.Score())
	}
}

func TestSessionNonMatchingSumIgnored(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{11, 13, 17})
	s := newTestSession(t, lvl, time.Second)

	s.Begin(id(lvl, 0, 0))
	s.Enter(id(lvl, 1, 0))
	if events := s.End(); events != nil {
		t.Errorf("sum 9 emitted %+v", events)
	}
	if s.Targets().Count() != 0 || s.Score() != 0 {
		t.Error("a non-matching sum must not change the completion set")
	}
}

func TestSessionLevelCompleteAndAdvance(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10, 13, 17})
	s := newTestSession(t, lvl, time.Second)

	s.Submit(10)
	s.Submit(13)
	events := s.Submit(17)

	want := []EventKind{EventTargetFound, EventLevelComplete}
	if got := kinds(events); len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("final match events = %v, want %v", got, want)
	}
	if !s.Pending() || s.Remaining() != time.Second {
		t.Fatalf("pending %v remaining %v, want a 1s advance", s.Pending(), s.Remaining())
	}
	if s.Cleared() != 1 {
		t.Errorf("cleared = %d, want 1", s.Cleared())
	}

	// Gestures are blocked until the next level arrives.
	if s.Begin(id(lvl, 0, 0)) {
		t.Error("Begin while an advance is pending should be ignored")
	}

	if events := s.Advance(600 * time.Millisecond); events != nil {
		t.Errorf("early Advance emitted %+v", events)
	}
	if s.Level() != lvl {
		t.Fatal("level changed before the delay elapsed")
	}

	events = s.Advance(400 * time.Millisecond)
	if len(events) != 1 || events[0].Kind != EventLevelStarted || events[0].Level != 2 {
		t.Fatalf("Advance events = %+v, want level_started(2)", events)
	}

	next := s.Level()
	if next.Number != 2 || next.Size != 5 || len(next.Targets) != 3 {
		t.Errorf("next level = %d size %d targets %d", next.Number, next.Size, len(next.Targets))
	}
	if s.Targets().Count() != 0 {
		t.Error("completion set should be empty after advancing")
	}
	if s.Pending() {
		t.Error("advance should no longer be pending")
	}
	if s.Score() != 40 {
		t.Errorf("score = %d, want 40 carried over", s.Score())
	}
	if _, ok := next.Cell(id(lvl, 0, 0)); ok {
		t.Error("cell IDs of the previous level must not resolve on the new one")
	}
}

func TestSessionNonAdjacentJump(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10, 13, 17})
	s := newTestSession(t, lvl, time.Second)

	s.Begin(id(lvl, 0, 0))
	if s.Enter(id(lvl, 2, 0)) {
		t.Error("jumping two columns should not extend the path")
	}
	if len(s.Tracker().Path()) != 1 || s.Tracker().Sum() != 4 {
		t.Errorf("path %v sum %d, want single cell and 4", s.Tracker().Path(), s.Tracker().Sum())
	}
}

func TestSessionReenterFirstCell(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10, 13, 17})
	s := newTestSession(t, lvl, time.Second)

	s.Begin(id(lvl, 0, 0))
	s.Enter(id(lvl, 1, 0))
	s.Enter(id(lvl, 0, 0))
	if got := len(s.Tracker().Path()); got != 2 {
		t.Errorf("path length = %d, want 2", got)
	}
}

func TestSessionCancel(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10})
	s := newTestSession(t, lvl, time.Second)

	if s.Cancel() {
		t.Error("Cancel with nothing pending should report false")
	}

	s.Begin(id(lvl, 0, 0))
	s.Enter(id(lvl, 1, 0))
	s.Enter(id(lvl, 0, 1))
	s.End()
	if !s.Pending() {
		t.Fatal("single target matched, want a pending advance")
	}

	if !s.Cancel() {
		t.Error("Cancel should report the dropped advance")
	}
	if events := s.Advance(time.Hour); events != nil {
		t.Errorf("cancelled advance still fired: %+v", events)
	}
	if s.Level() != lvl {
		t.Error("level changed after Cancel")
	}
}

func TestSessionCancelEndsGesture(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10})
	s := newTestSession(t, lvl, time.Second)

	s.Begin(id(lvl, 0, 0))
	s.Cancel()
	if s.Tracker().Selecting() {
		t.Error("Cancel should end the gesture in progress")
	}
}

func TestSessionReshuffle(t *testing.T) {
	lvl := fixedLevel(3, 4, level1Values, []int{30, 30, 31, 40})
	s := newTestSession(t, lvl, time.Second)
	s.Submit(30)

	events, err := s.Reshuffle()
	if err != nil {
		t.Fatalf("Reshuffle() failed: %v", err)
	}
	if len(events) != 1 || events[0].Kind != EventLevelStarted || events[0].Level != 3 {
		t.Errorf("Reshuffle events = %+v", events)
	}

	next := s.Level()
	if next.Number != 3 || next.Board == lvl.Board {
		t.Errorf("reshuffled level %d board %d, want level 3 on a new board", next.Number, next.Board)
	}
	if s.Targets().Count() != 0 {
		t.Error("reshuffle should reset the completion set")
	}
	if s.Score() != 30 {
		t.Errorf("score = %d, want matches kept in the run score", s.Score())
	}
}

func TestSessionReshuffleWhilePending(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10})
	s := newTestSession(t, lvl, time.Second)
	s.Submit(10)

	events, err := s.Reshuffle()
	if !errors.Is(err, ErrAdvancePending) || events != nil {
		t.Errorf("Reshuffle while pending = %+v, %v; want ErrAdvancePending", events, err)
	}
	if s.Level() != lvl {
		t.Error("reshuffle while pending must keep the level")
	}
}

func TestSessionDefaultDelay(t *testing.T) {
	lvl := fixedLevel(1, 4, level1Values, []int{10})
	s := newTestSession(t, lvl, 0)
	s.Submit(10)

	if s.Remaining() != DefaultAdvanceDelay {
		t.Errorf("remaining = %v, want %v", s.Remaining(), DefaultAdvanceDelay)
	}
}

func TestSessionMultiLevelRun(t *testing.T) {
	gen := NewGenerator(DefaultGenParams(), rand.New(rand.NewSource(11)))
	s, err := NewSession(gen, SessionOptions{StartLevel: 1, AdvanceDelay: time.Millisecond})
	if err != nil {
		t.Fatal(err)
	}

	for want := 1; want <= 10; want++ {
		if got := s.Level().Number; got != want {
			t.Fatalf("level = %d, want %d", got, want)
		}
		for !s.Targets().Reachable() {
			if _, err := s.Reshuffle(); err != nil {
				t.Fatal(err)
			}
		}
		for _, target := range s.Level().Targets {
			s.Submit(target)
		}
		if !s.Pending() {
			t.Fatalf("level %d not complete after matching every target", want)
		}
		s.Advance(time.Millisecond)
	}
}
