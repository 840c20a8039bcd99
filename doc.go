// Package dungeoncrack recovers Minecraft world seeds from an observed
// dungeon floor.
//
// A dungeon's floor tiles (cobblestone vs. mossy cobblestone) are chosen
// by successive calls to a truncated 48-bit Java LCG seeded by the
// world seed, the spawner's chunk, and a decorator salt. Given the
// spawner's block coordinates, the game version, the biome, and a
// partially-known floor-tile grid, this module returns every world seed
// consistent with those observations.
//
// The packages are organized by layer:
//
//	bigrat/, bigmatrix/       — exact-rational arithmetic and linear algebra
//	simplex/, lll/, latticeenum/ — LP feasibility, lattice reduction, bounded enumeration
//	lcg/, mcversion/          — the Java LCG model and game-version/biome types
//	floorprogram/             — floor-tile sequence to call-sequence expansion
//	reverser/                 — lattice translation of a generator call sequence
//	population/, nextlong/   — Hensel-lifting and closed-form seed reversers
//	dungeon/                  — the end-to-end orchestrator (Crack, Prepare, CrackPartial)
//
// See cmd/dungeoncrack for a command-line front end.
package dungeoncrack
