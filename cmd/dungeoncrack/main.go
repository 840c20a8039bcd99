// SPDX-License-Identifier: MIT

// Command dungeoncrack recovers Minecraft world seeds from an observed
// dungeon floor.
//
// Scenario: a spawner was found at (320, 29, -418) on 1.13, and the
// surrounding 9x7 floor was read off as a tile sequence. dungeoncrack
// reports every dungeon/structure/world seed consistent with it.
//
//	dungeoncrack -x 320 -y 29 -z -418 -version 1.13 -biome not-desert -floor 1111101111
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/dungeoncrack/dungeon"
	"github.com/katalvlaran/dungeoncrack/mcversion"
)

var versionsByFlag = map[string]mcversion.Version{
	"1.8": mcversion.V1_8, "1.9": mcversion.V1_9, "1.10": mcversion.V1_10,
	"1.11": mcversion.V1_11, "1.12": mcversion.V1_12, "1.13": mcversion.V1_13,
	"1.14": mcversion.V1_14, "1.15": mcversion.V1_15, "1.16": mcversion.V1_16,
	"1.17": mcversion.V1_17,
}

var biomesByFlag = map[string]mcversion.Biome{
	"desert": mcversion.Desert, "not-desert": mcversion.NotDesert, "unknown": mcversion.UnknownBiome,
}

func main() {
	x := flag.Int("x", 0, "spawner block x")
	y := flag.Int("y", 0, "spawner block y")
	z := flag.Int("z", 0, "spawner block z")
	versionFlag := flag.String("version", "1.13", "game version (1.8 .. 1.17)")
	biomeFlag := flag.String("biome", "unknown", "desert, not-desert, or unknown")
	floor := flag.String("floor", "", "floor tile sequence, see floorprogram.Parse")
	prepareOnly := flag.Bool("prepare", false, "report search-space size instead of cracking")
	flag.Parse()

	version, ok := versionsByFlag[*versionFlag]
	if !ok {
		log.Fatalf("dungeoncrack: unknown version %q", *versionFlag)
	}
	biome, ok := biomesByFlag[*biomeFlag]
	if !ok {
		log.Fatalf("dungeoncrack: unknown biome %q", *biomeFlag)
	}
	if *floor == "" {
		fmt.Fprintln(os.Stderr, "dungeoncrack: -floor is required")
		flag.Usage()
		os.Exit(2)
	}

	if *prepareOnly {
		result, err := dungeon.Prepare(int32(*x), int32(*y), int32(*z), version, *floor)
		if err != nil {
			log.Fatalf("dungeoncrack: prepare: %v", err)
		}
		fmt.Printf("possibilities=%d dimensions=%d infoBits=%.1f totalBranches=%d\n",
			result.Possibilities, result.Dimensions, result.InfoBits, result.TotalBranches)
		return
	}

	result, err := dungeon.Crack(int32(*x), int32(*y), int32(*z), version, biome, *floor)
	if err != nil {
		log.Fatalf("dungeoncrack: crack: %v", err)
	}

	fmt.Printf("dungeon seeds (%d): %v\n", len(result.DungeonSeeds), result.DungeonSeeds)
	fmt.Printf("structure seeds (%d): %v\n", len(result.StructureSeeds), result.StructureSeeds)
	fmt.Printf("world seeds (%d): %v\n", len(result.WorldSeeds), result.WorldSeeds)
}
