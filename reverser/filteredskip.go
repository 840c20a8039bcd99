// SPDX-License-Identifier: MIT

package reverser

import "github.com/katalvlaran/dungeoncrack/lcg"

// FilterKind names a predicate a FilteredSkip evaluates against the
// generator state after advancing to its skip position. The source
// represents this as a boxed closure; here it is a tagged variant so
// filters stay value-typed and allocation-free (spec's design note on
// FilteredSkip).
type FilterKind int

const (
	// NextIntNotZero passes when nextInt(Bound) != 0 — the predicate a
	// mossy-cobblestone floor tile encodes.
	NextIntNotZero FilterKind = iota
)

// Filter is one evaluatable predicate over a *lcg.Rand.
type Filter struct {
	Kind  FilterKind
	Bound int32
}

// Check evaluates the filter against r's current state, advancing it by
// one call as a side effect (NextInt always does).
func (f Filter) Check(r *lcg.Rand) bool {
	switch f.Kind {
	case NextIntNotZero:
		return r.NextInt(f.Bound) != 0
	default:
		return false
	}
}

// FilteredSkip is one advancement in the observed call sequence whose
// outcome is known only to satisfy a Filter, not a specific lattice
// bound. It is checked by walking a fresh Rand forward to the skip's
// call index and then evaluating the filter.
type FilteredSkip struct {
	Step   lcg.LCG
	Filter Filter
}

// NewFilteredSkip builds a FilteredSkip positioned at currentIndex calls
// from the reverser's first observation.
func NewFilteredSkip(currentIndex int64, filter Filter) FilteredSkip {
	return FilteredSkip{Step: lcg.Java.Combine(currentIndex), Filter: filter}
}

// CheckState advances r to this skip's position and evaluates its filter.
func (fs FilteredSkip) CheckState(r *lcg.Rand) bool {
	r.AdvanceLCG(fs.Step)
	return fs.Filter.Check(r)
}
