// SPDX-License-Identifier: MIT

package floorprogram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungeoncrack/floorprogram"
)

func TestParseMixedTileSequence(t *testing.T) {
	instructions := floorprogram.Parse("112311421")
	require.NotEmpty(t, instructions)
	for _, instr := range instructions {
		require.NotEqual(t, floorprogram.Kind(-1), instr.Kind)
	}
}

func TestParseAllAirIsEmpty(t *testing.T) {
	require.Empty(t, floorprogram.Parse("22222"))
}

func TestParseDropsTrailingSkips(t *testing.T) {
	instructions := floorprogram.Parse("10444")
	require.Len(t, instructions, 2)
	require.Equal(t, floorprogram.NextInt, instructions[0].Kind)
	require.Equal(t, floorprogram.FilteredSkip, instructions[1].Kind)
}

func TestExpandBranchesMutableSkip(t *testing.T) {
	instructions := floorprogram.Parse("131")
	programs, err := floorprogram.Expand(instructions, floorprogram.ExpandOptions{})
	require.NoError(t, err)
	require.Len(t, programs, 2)
}

func TestExpandTooManyPossibilities(t *testing.T) {
	sequence := ""
	for i := 0; i < 10; i++ {
		sequence += "13"
	}
	_, err := floorprogram.GetAllPossibilities(sequence, floorprogram.ExpandOptions{MaxPossibilities: 4})
	require.ErrorIs(t, err, floorprogram.ErrTooManyPossibilities)
}

func TestExpandNoMutableSkipsYieldsOneProgram(t *testing.T) {
	programs, err := floorprogram.GetAllPossibilities("1014", floorprogram.ExpandOptions{})
	require.NoError(t, err)
	require.Len(t, programs, 1)
}

func TestProgramValidatePanicsOnMutableSkip(t *testing.T) {
	p := floorprogram.Program{{Kind: floorprogram.MutableSkip, MinCalls: 0, MaxCalls: 1}}
	require.Panics(t, func() { p.Validate() })
}
