// SPDX-License-Identifier: MIT

package nextlong_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/lcg"
	"github.com/katalvlaran/dungeoncrack/nextlong"
)

func TestReverseZeroStructureSeedIncludesZero(t *testing.T) {
	seeds := nextlong.Reverse(0)
	require.Contains(t, seeds, int64(0))
}

func TestEquivalentsMatchesActualNextLong(t *testing.T) {
	structureSeed := int64(0)

	seeds := nextlong.Reverse(structureSeed)
	longs := nextlong.Equivalents(structureSeed)
	require.Len(t, longs, len(seeds))

	for i, seed := range seeds {
		r := lcg.FromInternalSeed(lcg.Java, seed)
		require.Equal(t, r.NextLong(), longs[i])
	}
}

func TestReverseReturnsAtMostThreeCandidates(t *testing.T) {
	seeds := nextlong.Reverse(123456789)
	require.LessOrEqual(t, len(seeds), 3)
}
