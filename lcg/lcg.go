// SPDX-License-Identifier: MIT

package lcg

// LCG is one affine step of a linear congruential generator:
// next = (multiplier*seed + addend) mod modulus. Multiplier and addend are
// carried as plain int64 and rely on Go's defined wraparound semantics for
// signed-integer overflow, matching the Rust original's wrapping_mul /
// wrapping_add.
type LCG struct {
	Multiplier int64
	Addend     int64
	Modulus    int64
}

// Java is the generator java.util.Random itself uses: multiplier
// 0x5DEECE66D, addend 0xB, modulus 2^48.
var Java = LCG{
	Multiplier: 0x5DEECE66D,
	Addend:     0xB,
	Modulus:    1 << 48,
}

// New builds an LCG from its three parameters.
func New(multiplier, addend, modulus int64) LCG {
	return LCG{Multiplier: multiplier, Addend: addend, Modulus: modulus}
}

// NextSeed advances seed by one application of this step.
func (l LCG) NextSeed(seed int64) int64 {
	return l.ModOp(l.Multiplier*seed + l.Addend)
}

// ModOp reduces n into [0, Modulus). When Modulus is a power of two this
// is a mask; otherwise it falls back to an unsigned remainder, since a
// signed Go '%' would return a negative result for negative n.
func (l LCG) ModOp(n int64) int64 {
	if isPowerOfTwo(l.Modulus) {
		return n & (l.Modulus - 1)
	}
	return int64(uint64(n) % uint64(l.Modulus))
}

func isPowerOfTwo(m int64) bool {
	return m > 0 && (m&(-m)) == m
}

// Combine raises this step to the steps-th power in the affine group
// (multiplier, addend), i.e. composing it with itself `steps` times.
// steps may be negative: the exponent is taken over its 64-bit unsigned
// bit pattern, which lands on the same result because the multiplicative
// order of an odd LCG multiplier modulo a power of two divides a power
// of two no larger than Modulus itself, so raising to 2^64 steps is the
// identity. This mirrors the Rust original's `(k as u64) >> 1` loop
// exactly, bit for bit.
func (l LCG) Combine(steps int64) LCG {
	multiplier := int64(1)
	addend := int64(0)
	im := l.Multiplier
	ia := l.Addend

	k := uint64(steps)
	for k != 0 {
		if k&1 != 0 {
			multiplier = multiplier * im
			addend = im*addend + ia
		}
		ia = (im + 1) * ia
		im = im * im
		k >>= 1
	}

	return New(l.ModOp(multiplier), l.ModOp(addend), l.Modulus)
}

// Invert returns the step that undoes one application of l.
func (l LCG) Invert() LCG {
	return l.Combine(-1)
}
