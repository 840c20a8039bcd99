// SPDX-License-Identifier: MIT

// Package floorprogram turns a dungeon floor's tile-digit string into the
// concrete call sequences the reverser builder consumes. Parsing folds
// consecutive unknown-run digits into one instruction and drops a
// trailing run of unknowns (they carry no information about the seed);
// expansion then branches every MutableSkip into its possible call
// counts, producing one Program per combination. The branch count is
// capped (ExpandOptions.MaxPossibilities, matching Kludwisz's
// DungeonDataParser) because a floor with many long unknown runs can
// otherwise blow up combinatorially.
package floorprogram
