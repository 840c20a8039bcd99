// SPDX-License-Identifier: MIT

// Package lll implements Lenstra-Lenstra-Lovász lattice-basis reduction
// over exact rationals, following Cohen's "A Course in Computational
// Algebraic Number Theory" (p. 95) — the same algorithm LattiCG's LLL.java
// ports. Reduce tracks a running Gram-Schmidt orthogonalization alongside
// the integer basis so that RED/SWAP only ever touch already-computed
// projections, and accumulates a companion transformation matrix mapping
// the reduced basis back to the original one. Rows that reduce to zero
// (linear dependencies in the input) are stripped from the output.
package lll
