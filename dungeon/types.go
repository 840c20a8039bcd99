// SPDX-License-Identifier: MIT

package dungeon

// FloorSize names the four grid shapes a dungeon floor can be observed
// at. A dungeon's spawner sits at its center, so floors narrower on one
// axis drop the outermost ring of cells on that axis only.
type FloorSize int

const (
	Size9x9 FloorSize = iota
	Size7x9
	Size9x7
	Size7x7
)

// bounds returns the half-open [min, max) cell range this size covers
// on each axis of a 9x9 grid.
func (s FloorSize) bounds() (xMin, xMax, zMin, zMax int) {
	xMin, xMax, zMin, zMax = 0, 9, 0, 9
	switch s {
	case Size7x7:
		xMin, xMax, zMin, zMax = 1, 8, 1, 8
	case Size7x9:
		xMin, xMax = 1, 8
	case Size9x7:
		zMin, zMax = 1, 8
	}
	return
}

// Sequence flattens a [z][x] row-major 9x9 floor-tile grid into the
// digit string the reverser consumes: x varies in the outer loop, z in
// the inner loop, reading floor[z][x] at each step. Cells floorSize
// excludes (the outer ring dropped by a 7-wide axis) are simply never
// visited; floor entries outside the caller's knowledge should be '4'
// (unknown-solid).
func Sequence(floor [9][9]byte, floorSize FloorSize) string {
	xMin, xMax, zMin, zMax := floorSize.bounds()

	seq := make([]byte, 0, (xMax-xMin)*(zMax-zMin))
	for x := xMin; x < xMax; x++ {
		for z := zMin; z < zMax; z++ {
			seq = append(seq, floor[z][x])
		}
	}
	return string(seq)
}

// CrackResult is the union of candidate seeds a crack run produced, at
// three stages of the reversal: the dungeon's own 48-bit internal seed,
// the 48-bit structure seed it decodes to, and the 64-bit world seed
// that structure seed is consistent with.
type CrackResult struct {
	DungeonSeeds   []int64
	StructureSeeds []int64
	WorldSeeds     []int64
}

// PrepareResult describes the search space of the first floor-program
// possibility, for a driver that wants to shard CrackPartial calls
// across workers before committing to the full search.
type PrepareResult struct {
	TotalBranches int64
	Possibilities int
	Dimensions    int
	InfoBits      float32
}
