// SPDX-License-Identifier: MIT

package reverser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/lcg"
	"github.com/katalvlaran/dungeoncrack/reverser"
)

const mask48 = int64(1<<48 - 1)

func TestExactSingleValueConstraintRecoversSeed(t *testing.T) {
	trueSeed := int64(123456789) & mask48
	target := lcg.Java.NextSeed(trueSeed)

	b := reverser.NewBuilder(nil)
	b.AddMeasuredSeed(target, target)

	seeds, err := b.FindAllValidSeeds()
	require.NoError(t, err)
	require.Contains(t, seeds, trueSeed)
}

func TestDimensionsTrackMeasuredSeeds(t *testing.T) {
	b := reverser.NewBuilder(nil)
	require.Equal(t, 0, b.Dimensions())
	b.AddMeasuredSeed(0, 1<<20)
	require.Equal(t, 1, b.Dimensions())
	b.AddMeasuredSeed(0, 1<<20)
	require.Equal(t, 2, b.Dimensions())
	require.Equal(t, 1.0, b.SuccessChance())
}

func TestNonPowerOfTwoNextIntReducesSuccessChance(t *testing.T) {
	b := reverser.NewBuilder(nil)
	b.AddNextIntCall(3, 0, 0)
	require.Equal(t, 2, b.Dimensions())
	require.Less(t, b.SuccessChance(), 1.0)
}

func TestPowerOfTwoNextIntKeepsSuccessChance(t *testing.T) {
	b := reverser.NewBuilder(nil)
	b.AddNextIntCall(4, 0, 0)
	require.Equal(t, 1, b.Dimensions())
	require.Equal(t, 1.0, b.SuccessChance())
}

func TestAddNextIntCallNonPositiveBoundPanics(t *testing.T) {
	b := reverser.NewBuilder(nil)
	require.Panics(t, func() { b.AddNextIntCall(0, 0, 0) })
}

func TestFilteredSkipMatchesManualSimulation(t *testing.T) {
	seed := int64(42)
	filter := reverser.Filter{Kind: reverser.NextIntNotZero, Bound: 4}
	fs := reverser.NewFilteredSkip(0, filter)

	manual := lcg.FromInternalSeed(lcg.Java, seed)
	want := manual.NextInt(4) != 0

	r := lcg.FromInternalSeed(lcg.Java, seed)
	got := fs.CheckState(&r)

	require.Equal(t, want, got)
}

func TestBranchCountAndSeedsNonEmptyForExactConstraint(t *testing.T) {
	trueSeed := int64(987654321) & mask48
	target := lcg.Java.NextSeed(trueSeed)

	b := reverser.NewBuilder(nil)
	b.AddMeasuredSeed(target, target)
	branches := b.BranchCount()
	require.GreaterOrEqual(t, branches, int64(1))

	b2 := reverser.NewBuilder(nil)
	b2.AddMeasuredSeed(target, target)
	seeds, err := b2.FindAllValidSeeds()
	require.NoError(t, err)
	require.NotEmpty(t, seeds)
}
