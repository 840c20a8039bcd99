// SPDX-License-Identifier: MIT
// Package dungeon: sentinel error set.

package dungeon

import "errors"

// ErrInsufficientInformation is returned when an observed floor program
// carries 32 bits of entropy or less: the resulting lattice would be
// under-constrained and enumerate an impractical number of candidates.
var ErrInsufficientInformation = errors.New("dungeon: floor pattern does not carry enough information")

// ErrNoPossibilities is returned by Prepare when the floor sequence
// expands to zero programs. An empty or all-air sequence does not
// trigger it: it expands to a single empty program.
var ErrNoPossibilities = errors.New("dungeon: no valid floor interpretations")

// errMutableSkipEncountered backs a panic: buildReverser's per-
// instruction switch must never see a MutableSkip, since every Program
// it receives has already been expanded. Program.Validate already
// panics on this before the switch runs; this is the same assertion
// enforced a second time at the point the invariant actually matters.
var errMutableSkipEncountered = errors.New("dungeon: MutableSkip encountered after expansion")
