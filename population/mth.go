// SPDX-License-Identifier: MIT

package population

import (
	mathbits "math/bits"

	"github.com/katalvlaran/dungeoncrack/lcg"
)

const (
	mask16 = int64(1)<<16 - 1
	mask32 = int64(1)<<32 - 1
	mask48 = int64(1)<<48 - 1
)

var m1 = lcg.Java.Multiplier

// lcgParams returns the multiplier/addend pairs for advancing two and
// four java.util.Random calls, the two per-axis LCG steps the population
// seed formula mixes x and z through.
func lcgParams() (m2, a2, m4, a4 int64) {
	step2 := lcg.Java.Combine(2)
	step4 := lcg.Java.Combine(4)
	return step2.Multiplier, step2.Addend, step4.Multiplier, step4.Addend
}

func getPow2(bitsN uint) int64 {
	return int64(1) << bitsN
}

func getMask(bitsN uint) int64 {
	if bitsN >= 64 {
		return -1
	}
	return int64(1)<<bitsN - 1
}

func maskBits(value int64, bitsN uint) int64 {
	return value & getMask(bitsN)
}

func trailingZeros(value int64) uint {
	return uint(mathbits.TrailingZeros64(uint64(value)))
}

// logicalShiftRight64 shifts value right as an unsigned 64-bit pattern,
// matching Java's >>> and the source's explicit "as u64 >>" casts. Plain
// Go ">>" on a signed int64 already matches the source's plain ">>"
// (arithmetic, sign-extending) everywhere else in this package.
func logicalShiftRight64(value int64, shift uint) int64 {
	return int64(uint64(value) >> shift)
}

// modInverse16 returns the multiplicative inverse of the odd value x
// modulo 2^16, via the standard bit-by-bit Newton-like construction.
func modInverse16(x int64) int64 {
	if x&1 == 0 {
		panic(errNotCoprime)
	}

	var inv int64
	b := int64(1)
	for i := uint(0); i < 16; i++ {
		if b&1 == 1 {
			inv |= int64(1) << i
			b = (b - x) >> 1
		} else {
			b >>= 1
		}
	}
	return inv
}

// hensel tries every bit extension of value consistent with target,
// starting at bit and stopping once bits bits have been fixed; offset is
// the distance from the bit currently being fixed to the next free bit
// of the coordinate mask. Each full match is appended to result.
func hensel(value int64, bit, bitsN, offset int, target int64, hash func(int64) int64, result *[]int64) {
	if bit >= bitsN {
		if maskBits(target, uint(bit+offset)) == maskBits(hash(value), uint(bit+offset)) {
			*result = append(*result, value)
		}
		return
	}

	if maskBits(target, uint(bit)) == maskBits(hash(value), uint(bit)) {
		hensel(value, bit+1, bitsN, offset, target, hash, result)
		hensel(value|getPow2(uint(bit+offset)), bit+1, bitsN, offset, target, hash, result)
	}
}
