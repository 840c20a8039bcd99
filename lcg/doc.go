// SPDX-License-Identifier: MIT

// Package lcg models the 48-bit linear congruential generator behind
// java.util.Random (LattiCG's LCG/Rand pair): NextSeed steps the state
// forward, Combine raises the step to an arbitrary power (positive or
// negative) via repeated squaring over the affine group, and Invert is
// the special case Combine(-1). Rand is the generator state carrying a
// seed alongside the generator that advances it, with both raw and
// scrambled (XOR-with-multiplier) seed entry points matching Java's own
// internal-seed convention.
package lcg
