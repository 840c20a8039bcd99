// SPDX-License-Identifier: MIT

package dungeon_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/dungeon"
	"github.com/katalvlaran/dungeoncrack/mcversion"
)

func TestSequenceOrdersXOuterZInner(t *testing.T) {
	var floor [9][9]byte
	for z := 0; z < 9; z++ {
		for x := 0; x < 9; x++ {
			floor[z][x] = byte('0' + x)
		}
	}

	seq := dungeon.Sequence(floor, dungeon.Size9x7)

	var want strings.Builder
	for x := 0; x < 9; x++ {
		for z := 1; z < 8; z++ {
			want.WriteByte(byte('0' + x))
		}
	}
	require.Equal(t, want.String(), seq)
	require.Len(t, seq, 9*7)
}

func TestSequenceDropsOuterRingForNarrowAxes(t *testing.T) {
	var floor [9][9]byte
	for z := 0; z < 9; z++ {
		for x := 0; x < 9; x++ {
			floor[z][x] = byte('0' + x)
		}
	}

	seq := dungeon.Sequence(floor, dungeon.Size7x9)
	require.Len(t, seq, 7*9)

	var want strings.Builder
	for x := 1; x < 8; x++ {
		for z := 0; z < 9; z++ {
			want.WriteByte(byte('0' + x))
		}
	}
	require.Equal(t, want.String(), seq)
}

func TestCrackRejectsAllAirFloorAsInsufficientInformation(t *testing.T) {
	_, err := dungeon.Crack(0, 0, 0, mcversion.V1_13, mcversion.NotDesert, "22222")
	require.ErrorIs(t, err, dungeon.ErrInsufficientInformation)
}

func TestPrepareReportsPossibilitiesAndDimensions(t *testing.T) {
	result, err := dungeon.Prepare(320, 29, -418, mcversion.V1_13, "1111101111")
	require.NoError(t, err)
	require.Equal(t, 1, result.Possibilities)
	require.Greater(t, result.Dimensions, 0)
	require.GreaterOrEqual(t, result.TotalBranches, int64(1))
}

