// SPDX-License-Identifier: MIT

package dungeon

import (
	"github.com/katalvlaran/dungeoncrack/floorprogram"
	"github.com/katalvlaran/dungeoncrack/mcversion"
	"github.com/katalvlaran/dungeoncrack/reverser"
)

type plannedCall struct {
	isNextInt bool
	bound     int32
	value     int32
	skipCount int64
}

// buildReverser translates one expanded floor program into a
// reverser.Builder loaded with the spawner-position preamble, the two
// unmeasured decorator-placement calls, and one entry per floor
// instruction. It returns the builder together with the total
// information (in bits) the program's constraints carry, starting from
// the 16 bits the preamble's coordinate draws fix (4 bits for each of
// the two nextInt(16) draws, 8 bits for the nextInt(256) draw).
func buildReverser(spawnerX, spawnerY, spawnerZ int32, version mcversion.Version, program floorprogram.Program) (*reverser.Builder, float32) {
	program.Validate()

	offsetX := spawnerX & 15
	y := spawnerY
	offsetZ := spawnerZ & 15

	var calls []plannedCall
	var filteredSkips []reverser.FilteredSkip
	currentIndex := int64(0)

	pushNextInt := func(bound, value int32) {
		calls = append(calls, plannedCall{isNextInt: true, bound: bound, value: value})
		currentIndex++
	}
	pushSkip := func(count int64) {
		calls = append(calls, plannedCall{skipCount: count})
		currentIndex += count
	}

	// Versions through 1.14 draw x, y, z; 1.15+ reordered the call to
	// x, z, y.
	if version.Before(mcversion.V1_15) {
		pushNextInt(16, offsetX)
		pushNextInt(256, y)
		pushNextInt(16, offsetZ)
	} else {
		pushNextInt(16, offsetX)
		pushNextInt(16, offsetZ)
		pushNextInt(256, y)
	}

	pushSkip(2)

	infoBits := float32(16.0)
	for _, instr := range program {
		switch instr.Kind {
		case floorprogram.NextInt:
			pushNextInt(4, 0)
			infoBits += 2.0
		case floorprogram.FilteredSkip:
			filteredSkips = append(filteredSkips, reverser.NewFilteredSkip(currentIndex, reverser.Filter{
				Kind:  reverser.NextIntNotZero,
				Bound: 4,
			}))
			pushSkip(1)
			infoBits += 0.4
		case floorprogram.Skip:
			pushSkip(int64(instr.MaxCalls))
		case floorprogram.MutableSkip:
			panic(errMutableSkipEncountered)
		}
	}

	b := reverser.NewBuilder(filteredSkips)
	for _, c := range calls {
		if c.isNextInt {
			b.AddNextIntCall(c.bound, c.value, c.value)
		} else {
			b.AddUnmeasuredSeeds(c.skipCount)
		}
	}

	return b, infoBits
}
