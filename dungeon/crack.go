// SPDX-License-Identifier: MIT

package dungeon

import (
	"github.com/katalvlaran/dungeoncrack/floorprogram"
	"github.com/katalvlaran/dungeoncrack/lcg"
	"github.com/katalvlaran/dungeoncrack/mcversion"
	"github.com/katalvlaran/dungeoncrack/nextlong"
	"github.com/katalvlaran/dungeoncrack/population"
)

const mask48 = int64(1)<<48 - 1

// decoratorSlots is the number of decorator-schedule positions a
// dungeon's floor call may occupy within one chunk; the position is
// unknown, so every candidate dungeon seed is tried at all of them.
const decoratorSlots = 8

// decoratorStepBack is how many generator calls separate consecutive
// decorator-schedule slots, walked backward from a later slot to an
// earlier one.
const decoratorStepBack = -5

// Crack recovers every world seed consistent with an observed dungeon
// floor, given the spawner block position, game version, biome, and the
// floor-tile sequence (see floorprogram.Parse for the tile alphabet).
func Crack(spawnerX, spawnerY, spawnerZ int32, version mcversion.Version, biome mcversion.Biome, floorSequence string) (CrackResult, error) {
	saltList := salts(version, biome)

	possibilities, err := floorprogram.GetAllPossibilities(floorSequence, floorprogram.ExpandOptions{})
	if err != nil {
		return CrackResult{}, err
	}

	chunkX := (spawnerX >> 4) << 4
	chunkZ := (spawnerZ >> 4) << 4

	dungeonSeeds := make(map[int64]struct{})
	structureSeeds := make(map[int64]struct{})

	for _, program := range possibilities {
		b, infoBits := buildReverser(spawnerX, spawnerY, spawnerZ, version, program)
		if infoBits <= 32.0 {
			return CrackResult{}, ErrInsufficientInformation
		}

		seeds, err := b.FindAllValidSeeds()
		if err != nil {
			return CrackResult{}, err
		}

		collectStructureSeeds(seeds, chunkX, chunkZ, saltList, dungeonSeeds, structureSeeds)
	}

	return finishResult(dungeonSeeds, structureSeeds), nil
}

// Prepare reports the search space of the floor sequence's first
// expanded program, for a driver that wants to shard the work with
// CrackPartial rather than run Crack directly.
func Prepare(spawnerX, spawnerY, spawnerZ int32, version mcversion.Version, floorSequence string) (PrepareResult, error) {
	possibilities, err := floorprogram.GetAllPossibilities(floorSequence, floorprogram.ExpandOptions{})
	if err != nil {
		return PrepareResult{}, err
	}
	if len(possibilities) == 0 {
		return PrepareResult{}, ErrNoPossibilities
	}

	b, infoBits := buildReverser(spawnerX, spawnerY, spawnerZ, version, possibilities[0])

	return PrepareResult{
		TotalBranches: b.BranchCount(),
		Possibilities: len(possibilities),
		Dimensions:    b.Dimensions(),
		InfoBits:      infoBits,
	}, nil
}

// CrackPartial is Crack with the first program's enumeration restricted
// to depth-0 branches in [branchStart, branchEnd). Any further programs
// the sequence expands to are enumerated whole, only by the call whose
// branchStart is 0 or less. Running it over every branch range in a
// partition of [0, Prepare(...).TotalBranches) and unioning the results
// reproduces Crack's output exactly.
func CrackPartial(spawnerX, spawnerY, spawnerZ int32, version mcversion.Version, biome mcversion.Biome, floorSequence string, branchStart, branchEnd int64) (CrackResult, error) {
	saltList := salts(version, biome)

	possibilities, err := floorprogram.GetAllPossibilities(floorSequence, floorprogram.ExpandOptions{})
	if err != nil {
		return CrackResult{}, err
	}

	chunkX := (spawnerX >> 4) << 4
	chunkZ := (spawnerZ >> 4) << 4

	dungeonSeeds := make(map[int64]struct{})
	structureSeeds := make(map[int64]struct{})

	for i, program := range possibilities {
		b, infoBits := buildReverser(spawnerX, spawnerY, spawnerZ, version, program)
		if infoBits <= 32.0 {
			return CrackResult{}, ErrInsufficientInformation
		}

		var seeds []int64
		if i == 0 {
			seeds, err = b.FindSeedsForBranches(branchStart, branchEnd)
		} else if branchStart <= 0 {
			seeds, err = b.FindAllValidSeeds()
		} else {
			continue
		}
		if err != nil {
			return CrackResult{}, err
		}

		collectStructureSeeds(seeds, chunkX, chunkZ, saltList, dungeonSeeds, structureSeeds)
	}

	return finishResult(dungeonSeeds, structureSeeds), nil
}

// collectStructureSeeds walks each candidate dungeon seed backward
// through decoratorSlots decorator positions, per salt, deriving a
// population seed at each stop and folding every structure seed
// population.Reverse finds for it into structureSeeds.
func collectStructureSeeds(seeds []int64, chunkX, chunkZ int32, saltList []int64, dungeonSeeds, structureSeeds map[int64]struct{}) {
	for _, seed := range seeds {
		dungeonSeeds[seed] = struct{}{}

		for _, salt := range saltList {
			r := lcg.FromInternalSeed(lcg.Java, seed)

			for i := 0; i < decoratorSlots; i++ {
				popSeed := (r.Seed() ^ lcg.Java.Multiplier) - salt

				// The library that population-seed reversal was ported
				// from always reverses against the modern (1.13+)
				// rounding rule here, regardless of the target world's
				// actual version.
				for _, ss := range population.Reverse(popSeed, chunkX, chunkZ, mcversion.V1_14) {
					structureSeeds[ss&mask48] = struct{}{}
				}

				r.Advance(decoratorStepBack)
			}
		}
	}
}

func finishResult(dungeonSeeds, structureSeeds map[int64]struct{}) CrackResult {
	worldSeeds := make(map[int64]struct{})
	for ss := range structureSeeds {
		for _, ws := range nextlong.Equivalents(ss) {
			worldSeeds[ws] = struct{}{}
		}
	}

	return CrackResult{
		DungeonSeeds:   keys(dungeonSeeds),
		StructureSeeds: keys(structureSeeds),
		WorldSeeds:     keys(worldSeeds),
	}
}

func keys(m map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// salts returns the decorator salts a dungeon floor may have been
// generated under: versions at or past 1.15 split by biome (a desert
// chunk uses a different salt than any other biome), earlier versions
// use a single fixed salt.
func salts(version mcversion.Version, biome mcversion.Biome) []int64 {
	if version.Before(mcversion.V1_15) {
		return []int64{20003}
	}

	switch biome {
	case mcversion.Desert:
		return []int64{30003}
	case mcversion.NotDesert:
		return []int64{30002}
	default:
		return []int64{30002, 30003}
	}
}
