// SPDX-License-Identifier: MIT

// Package latticeenum enumerates every integer lattice point v = B·f + o
// whose coordinates fall within a caller-supplied [lower, upper] box,
// using an LP relaxation (package simplex) to prune the feasible range at
// each recursion depth. It is a faithful port of LattiCG's
// Enumerate.java/EnumerateRt.java/SearchNode.java: dimensions are visited
// narrow-first (by LP-measured width) and each dimension's integer values
// are visited center-outward, both required for the parallel-sharding
// contract BranchCount/EnumerateBranches establishes.
package latticeenum
