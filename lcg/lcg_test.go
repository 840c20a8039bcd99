// SPDX-License-Identifier: MIT

package lcg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/lcg"
)

func TestJavaNextSeedFromZero(t *testing.T) {
	require.Equal(t, int64(0xB), lcg.Java.NextSeed(0))
}

func TestJavaNextSeedMatchesFormula(t *testing.T) {
	const mask48 = int64(1<<48 - 1)
	got := lcg.Java.NextSeed(0xB)
	want := (0xB*int64(0x5DEECE66D) + 0xB) & mask48
	require.Equal(t, want, got)
}

func TestCombineOneIsIdentity(t *testing.T) {
	step := lcg.Java.Combine(1)
	require.Equal(t, lcg.Java.Multiplier, step.Multiplier)
	require.Equal(t, lcg.Java.Addend, step.Addend)
}

func TestCombineZeroIsNoOp(t *testing.T) {
	step := lcg.Java.Combine(0)
	for _, seed := range []int64{0, 1, 0xB, 12345, 1 << 47} {
		require.Equal(t, seed&(1<<48-1), step.NextSeed(seed))
	}
}

func TestCombineRoundTripsWithInverse(t *testing.T) {
	fwd := lcg.Java.Combine(17)
	back := lcg.Java.Combine(-17)
	for _, seed := range []int64{0, 1, 0xB, 12345, 1 << 47} {
		advanced := fwd.NextSeed(seed)
		require.Equal(t, seed&(1<<48-1), back.NextSeed(advanced))
	}
}

func TestInvertUndoesNextSeed(t *testing.T) {
	inv := lcg.Java.Invert()
	seed := int64(98765)
	next := lcg.Java.NextSeed(seed)
	require.Equal(t, seed&(1<<48-1), inv.NextSeed(next))
}

func TestCombineMatchesRepeatedApplication(t *testing.T) {
	seed := int64(555)
	manual := seed
	for i := 0; i < 9; i++ {
		manual = lcg.Java.NextSeed(manual)
	}
	combined := lcg.Java.Combine(9).NextSeed(seed)
	require.Equal(t, manual, combined)
}

func TestRandAdvanceMatchesRepeatedNext(t *testing.T) {
	r1 := lcg.FromInternalSeed(lcg.Java, 42)
	r2 := lcg.FromInternalSeed(lcg.Java, 42)

	for i := 0; i < 5; i++ {
		r1.Next(31)
	}
	r2.Advance(5)

	require.Equal(t, r1.Seed(), r2.Seed())
}

func TestScrambledSeedRoundTrip(t *testing.T) {
	r := lcg.FromScrambledSeed(lcg.Java, 31415926535)
	require.Equal(t, lcg.Java.ModOp(31415926535^lcg.Java.Multiplier), r.Seed())
}

func TestNextIntPowerOfTwoBoundStaysInRange(t *testing.T) {
	r := lcg.FromInternalSeed(lcg.Java, 7)
	for i := 0; i < 200; i++ {
		v := r.NextInt(16)
		require.GreaterOrEqual(t, v, int32(0))
		require.Less(t, v, int32(16))
	}
}

func TestNextIntNonPowerOfTwoBoundStaysInRange(t *testing.T) {
	r := lcg.FromInternalSeed(lcg.Java, 9001)
	for i := 0; i < 200; i++ {
		v := r.NextInt(10)
		require.GreaterOrEqual(t, v, int32(0))
		require.Less(t, v, int32(10))
	}
}

func TestNextIntNonPositiveBoundPanics(t *testing.T) {
	r := lcg.FromInternalSeed(lcg.Java, 1)
	require.Panics(t, func() { r.NextInt(0) })
}

func TestNextLongDeterministic(t *testing.T) {
	r1 := lcg.FromInternalSeed(lcg.Java, 2026)
	r2 := lcg.FromInternalSeed(lcg.Java, 2026)
	require.Equal(t, r1.NextLong(), r2.NextLong())
}
