package sumlink

import (
	"slices"
	"testing"
)

func TestTargetsMatch(t *testing.T) {
	tg := NewTargets([]int{12, 15, 18})

	tests := []struct {
		sum   int
		grew  bool
		count int
	}{
		{11, false, 0},
		{15, true, 1},
		{15, false, 1},
		{12, true, 2},
		{0, false, 2},
		{18, true, 3},
	}

	for _, tc := range tests {
		if got := tg.Match(tc.sum); got != tc.grew {
			t.Errorf("Match(%d) = %v, want %v", tc.sum, got, tc.grew)
		}
		if tg.Count() != tc.count {
			t.Errorf("after Match(%d): count = %d, want %d", tc.sum, tg.Count(), tc.count)
		}
	}

	if !tg.Complete() {
		t.Error("all targets matched, want Complete")
	}
	if got := tg.Values(); !slices.Equal(got, []int{15, 12, 18}) {
		t.Errorf("Values() = %v, want match order", got)
	}
}

func TestTargetsSubsetOfLevel(t *testing.T) {
	targets := []int{10, 14}
	tg := NewTargets(targets)
	for sum := 0; sum < 40; sum++ {
		tg.Match(sum)
	}
	for _, v := range tg.Values() {
		if !slices.Contains(targets, v) {
			t.Errorf("matched %d is not a target", v)
		}
	}
	if tg.Count() > tg.Total() {
		t.Errorf("count %d exceeds total %d", tg.Count(), tg.Total())
	}
}

func TestTargetsDuplicates(t *testing.T) {
	tg := NewTargets([]int{12, 12, 17})

	if tg.Reachable() {
		t.Error("duplicate targets should be reported unreachable")
	}

	tg.Match(12)
	tg.Match(12)
	tg.Match(17)

	if tg.Count() != 2 {
		t.Errorf("count = %d, want 2 distinct matched values", tg.Count())
	}
	if tg.Complete() {
		t.Error("duplicate targets cannot complete with value matching")
	}
}

func TestTargetsEmpty(t *testing.T) {
	tg := NewTargets(nil)
	if tg.Complete() {
		t.Error("an empty target list is never complete")
	}
	if tg.Match(0) {
		t.Error("nothing matches an empty target list")
	}
	if !tg.Reachable() {
		t.Error("an empty target list has no duplicates")
	}
}
