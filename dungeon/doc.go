// SPDX-License-Identifier: MIT

// Package dungeon wires the floor-program, reverser, population, and
// nextlong packages into the end-to-end cracker: given a spawner
// position, game version, biome, and an observed floor-tile sequence, it
// recovers the world seeds consistent with that observation.
//
// A floor tile sequence first expands into one or more concrete
// floorprogram.Programs (MutableSkip tiles may have run any of several
// lengths). Each program becomes a call sequence — the fixed spawner-
// position preamble, two unmeasured skips, then one entry per floor
// instruction — which a reverser.Builder turns into candidate 48-bit
// dungeon seeds. Each dungeon seed is walked backward through up to
// eight decorator-schedule slots, per possible salt, to recover
// population seeds; those feed population.Reverse for structure seeds,
// and nextlong.Equivalents turns structure seeds into world seeds.
//
// Prepare/Crack/CrackPartial mirror the parallel-driver contract: a
// caller can ask for the branch count of the first program's search
// space (Prepare), then shard that program's per-branch work across
// workers (CrackPartial) instead of running it all through Crack; any
// further programs run whole in the shard whose range starts at 0.
package dungeon
