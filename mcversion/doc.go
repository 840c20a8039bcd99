// SPDX-License-Identifier: MIT

// Package mcversion carries the two small pieces of game-specific
// context every reverser needs: a totally ordered game version and a
// biome tag. Neither has an LCG or math component of its own; both are
// closed-form lookups consulted by population and dungeon to pick the
// right constant (spawner call order, population sigma, decorator
// salt).
package mcversion
