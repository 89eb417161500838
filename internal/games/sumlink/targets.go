package sumlink

import "slices"

// Targets tracks which target sums of a level have been matched.
// Matching is by value: a sum matches when it equals some target and that
// value has not been matched yet. The level is complete when the number of
// matched values equals the number of target slots, so a level whose
// targets contain duplicates can never complete (see Reachable).
type Targets struct {
	targets []int
	matched []int // In match order
}

// NewTargets creates an empty completion set for the given targets.
func NewTargets(targets []int) *Targets {
	return &Targets{targets: targets}
}

// Match records sum if it is an unmatched target value.
// Returns true when the completion set grew.
func (t *Targets) Match(sum int) bool {
	if !slices.Contains(t.targets, sum) || t.Matched(sum) {
		return false
	}
	t.matched = append(t.matched, sum)
	return true
}

// Matched reports whether the target value has been matched.
func (t *Targets) Matched(value int) bool {
	return slices.Contains(t.matched, value)
}

// Count returns the number of matched values.
func (t *Targets) Count() int {
	return len(t.matched)
}

// Total returns the number of target slots.
func (t *Targets) Total() int {
	return len(t.targets)
}

// Complete reports whether every target slot is accounted for.
func (t *Targets) Complete() bool {
	return len(t.targets) > 0 && len(t.matched) == len(t.targets)
}

// Reachable reports whether completion is still possible. It is false when
// duplicate target values leave fewer distinct values than slots.
func (t *Targets) Reachable() bool {
	distinct := slices.Clone(t.targets)
	slices.Sort(distinct)
	return len(slices.Compact(distinct)) == len(t.targets)
}

// Values returns the matched values in match order.
func (t *Targets) Values() []int {
	return slices.Clone(t.matched)
}
