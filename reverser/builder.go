// SPDX-License-Identifier: MIT

package reverser

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigmatrix/ops"
	"github.com/katalvlaran/dungeoncrack/bigrat"
	"github.com/katalvlaran/dungeoncrack/latticeenum"
	"github.com/katalvlaran/dungeoncrack/lcg"
	"github.com/katalvlaran/dungeoncrack/lll"
	"github.com/katalvlaran/dungeoncrack/simplex"
)

// Builder accumulates observed java.util.Random call outcomes into a
// lattice problem and solves it for candidate internal seeds. Zero value
// is not usable; construct with NewBuilder.
type Builder struct {
	modulus *big.Int
	mult    *big.Int
	step    lcg.LCG

	mins          []*big.Int
	maxes         []*big.Int
	callIndices   []int64
	filteredSkips []FilteredSkip

	lattice          bigmatrix.Matrix
	hasLattice       bool
	currentCallIndex int64
	dimensions       int
	successChance    float64
}

// NewBuilder starts a reverser for java.util.Random's LCG, with the
// given post-filters applied after candidate seeds are found.
func NewBuilder(filteredSkips []FilteredSkip) *Builder {
	modulus := big.NewInt(lcg.Java.Modulus)
	mult := new(big.Int).Mod(big.NewInt(lcg.Java.Multiplier), modulus)
	return &Builder{
		modulus:       modulus,
		mult:          mult,
		step:          lcg.Java,
		filteredSkips: filteredSkips,
		successChance: 1.0,
	}
}

// Dimensions returns the number of lattice dimensions built so far.
func (b *Builder) Dimensions() int { return b.dimensions }

// SuccessChance returns the estimated probability that the constraints
// accumulated so far admit the true seed (< 1 only when a
// non-power-of-two nextInt modulus forced a probabilistic encoding).
func (b *Builder) SuccessChance() float64 { return b.successChance }

// AddUnmeasuredSeeds advances the call-index counter by k with no
// lattice change, for calls whose result was never observed.
func (b *Builder) AddUnmeasuredSeeds(k int64) {
	b.currentCallIndex += k
}

// AddMeasuredSeed records a bound [min, max] (inclusive, 48-bit internal
// representation) on the next observed call.
func (b *Builder) AddMeasuredSeed(min, max int64) {
	b.AddMeasuredSeedBig(big.NewInt(min), big.NewInt(max))
}

// AddMeasuredSeedBig is AddMeasuredSeed for arbitrary-precision bounds.
func (b *Builder) AddMeasuredSeedBig(min, max *big.Int) {
	mn := new(big.Int).Mod(min, b.modulus)
	mx := new(big.Int).Mod(max, b.modulus)
	if mx.Cmp(mn) < 0 {
		mx.Add(mx, b.modulus)
	}

	b.mins = append(b.mins, mn)
	b.maxes = append(b.maxes, mx)
	b.dimensions++
	b.currentCallIndex++
	b.callIndices = append(b.callIndices, b.currentCallIndex)

	dim := b.dimensions
	newLattice := b.growLattice(dim, dim, dim-1)

	exp := big.NewInt(b.callIndices[dim-1] - b.callIndices[0])
	tempMult := new(big.Int).Exp(b.mult, exp, b.modulus)
	newLattice.Set(0, dim-1, bigrat.FromBigInt(tempMult))
	newLattice.Set(dim, dim-1, bigrat.FromBigInt(b.modulus))

	b.lattice = newLattice
	b.hasLattice = true
}

// AddModuloMeasuredSeed records a bound on the next observed call's
// value modulo measuredMod, where measuredMod need not divide 2^48.
func (b *Builder) AddModuloMeasuredSeed(min, max, measuredMod int64) {
	b.AddModuloMeasuredSeedBig(big.NewInt(min), big.NewInt(max), big.NewInt(measuredMod))
}

// AddModuloMeasuredSeedBig is AddModuloMeasuredSeed for arbitrary-precision bounds.
func (b *Builder) AddModuloMeasuredSeedBig(min, max, measuredMod *big.Int) {
	mn := new(big.Int).Mod(min, measuredMod)
	mx := new(big.Int).Mod(max, measuredMod)
	if mx.Cmp(mn) < 0 {
		mx.Add(mx, measuredMod)
	}

	residue := new(big.Int).Mod(b.modulus, measuredMod)
	if residue.Sign() != 0 {
		residueF, _ := new(big.Float).SetInt(residue).Float64()
		modulusF, _ := new(big.Float).SetInt(b.modulus).Float64()
		b.successChance *= 1.0 - residueF/modulusF

		// Coordinate 1: is this draw a "real" one (not in the biased tail).
		b.mins = append(b.mins, big.NewInt(0))
		b.maxes = append(b.maxes, new(big.Int).Sub(b.modulus, residue))
		b.currentCallIndex++
		b.callIndices = append(b.callIndices, b.currentCallIndex)

		// Coordinate 2: does the draw satisfy the observed bound, at the
		// same call index as coordinate 1.
		b.mins = append(b.mins, mn)
		b.maxes = append(b.maxes, mx)
		b.callIndices = append(b.callIndices, b.currentCallIndex)

		b.dimensions += 2
		dim := b.dimensions
		newLattice := b.growLattice(dim, dim-1, dim-2)

		exp := big.NewInt(b.callIndices[dim-1] - b.callIndices[0])
		tempMult := new(big.Int).Exp(b.mult, exp, b.modulus)
		newLattice.Set(0, dim-2, bigrat.FromBigInt(tempMult))
		newLattice.Set(0, dim-1, bigrat.FromBigInt(tempMult))
		newLattice.Set(dim-1, dim-1, bigrat.FromBigInt(b.modulus))
		newLattice.Set(dim-1, dim-2, bigrat.FromBigInt(b.modulus))
		newLattice.Set(dim, dim-1, bigrat.FromBigInt(measuredMod))

		b.lattice = newLattice
		b.hasLattice = true
	} else {
		b.mins = append(b.mins, mn)
		b.maxes = append(b.maxes, mx)
		b.dimensions++
		b.currentCallIndex++
		b.callIndices = append(b.callIndices, b.currentCallIndex)

		dim := b.dimensions
		newLattice := b.growLattice(dim, dim, dim-1)

		exp := big.NewInt(b.callIndices[dim-1] - b.callIndices[0])
		tempMult := new(big.Int).Exp(b.mult, exp, b.modulus)
		newLattice.Set(0, dim-1, bigrat.FromBigInt(tempMult))
		newLattice.Set(dim, dim-1, bigrat.FromBigInt(measuredMod))

		b.lattice = newLattice
		b.hasLattice = true
	}
}

// growLattice returns a fresh (newDim+1) x newDim zero matrix with the
// top-left copyRows x copyCols block copied from the current lattice
// (a no-op before the first dimension is added).
func (b *Builder) growLattice(newDim, copyRows, copyCols int) bigmatrix.Matrix {
	out := bigmatrix.NewMatrix(newDim+1, newDim)
	if !b.hasLattice {
		return out
	}
	for row := 0; row < copyRows; row++ {
		for col := 0; col < copyCols; col++ {
			out.Set(row, col, b.lattice.At(row, col))
		}
	}
	return out
}

// AddNextIntCall records an observed nextInt(n) call whose result was in
// [min, max]. Panics if n is not positive.
func (b *Builder) AddNextIntCall(n, min, max int32) {
	if n <= 0 {
		panic(errBoundNotPositive)
	}

	if n&(-n) == n {
		log := int64(bits.TrailingZeros32(uint32(n)))
		shift := int64(1) << uint(48-log)
		b.AddMeasuredSeed(int64(min)*shift, int64(max)*shift+shift-1)
		return
	}

	const shift17 = int64(1) << 17
	b.AddModuloMeasuredSeed(int64(min)*shift17, (int64(max)*shift17)|0x1ffff, int64(n)*shift17)
}

// AddNextIntUnboundedCall records an observed unbounded nextInt() call
// (the full 32-bit range) whose result was in [min, max].
func (b *Builder) AddNextIntUnboundedCall(min, max int32) {
	const shift16 = int64(1) << 16
	b.AddMeasuredSeed(int64(min)*shift16, int64(max)*shift16+shift16-1)
}

// ConsumeNextIntCalls accounts for numCalls unobserved nextInt(bound)
// calls, discounting SuccessChance for the bias a non-power-of-two bound
// introduces, then advances past them.
func (b *Builder) ConsumeNextIntCalls(numCalls, bound int32) {
	residue := (int64(1) << 48) % ((int64(1) << 17) * int64(bound))
	if residue != 0 {
		b.successChance *= math.Pow(1.0-float64(residue)/float64(int64(1)<<48), float64(numCalls))
	}
	b.AddUnmeasuredSeeds(int64(numCalls))
}

// FindAllValidSeeds solves the accumulated constraints for every
// candidate 48-bit internal seed at the first observed call. A non-nil
// error alongside a non-empty result means at least one width probe hit
// the simplex pivot cap (latticeenum.ErrCycling): the bounds used were
// conservative, so the result may include false positives that the
// filtered-skip pass would otherwise have caught.
func (b *Builder) FindAllValidSeeds() ([]int64, error) {
	if b.dimensions == 0 {
		return b.allModulusValues(), nil
	}

	b.createLattice()
	basis, lower, upper, origin := b.prepareEnumerateParams()
	results, err := latticeenum.EnumerateBounds(basis, lower, upper, origin, simplex.Options{})
	return b.filterResults(results), err
}

// BranchCount returns the number of depth-0 branches FindSeedsForBranches
// can be sharded across; callers must call it before partitioning work.
func (b *Builder) BranchCount() int64 {
	if b.dimensions == 0 {
		return 1
	}
	b.createLattice()
	basis, lower, upper, origin := b.prepareEnumerateParams()
	return latticeenum.BranchCount(basis, lower, upper, origin, simplex.Options{})
}

// FindSeedsForBranches is FindAllValidSeeds restricted to depth-0
// branches [branchStart, branchEnd).
func (b *Builder) FindSeedsForBranches(branchStart, branchEnd int64) ([]int64, error) {
	if b.dimensions == 0 {
		if branchStart == 0 {
			return b.allModulusValues(), nil
		}
		return nil, nil
	}

	b.createLattice()
	basis, lower, upper, origin := b.prepareEnumerateParams()
	results, err := latticeenum.EnumerateBranches(basis, lower, upper, origin, simplex.Options{}, branchStart, branchEnd)
	return b.filterResults(results), err
}

func (b *Builder) allModulusValues() []int64 {
	out := make([]int64, 0, b.step.Modulus)
	for i := int64(0); i < b.step.Modulus; i++ {
		out = append(out, i)
	}
	return out
}

func (b *Builder) prepareEnumerateParams() (bigmatrix.Matrix, bigmatrix.Vector, bigmatrix.Vector, bigmatrix.Vector) {
	dims := b.dimensions
	lower := bigmatrix.NewVector(dims)
	upper := bigmatrix.NewVector(dims)
	origin := bigmatrix.NewVector(dims)

	r := lcg.FromInternalSeed(b.step, 0)
	for i := 0; i < dims; i++ {
		lower.Set(i, bigrat.FromBigInt(b.mins[i]))
		upper.Set(i, bigrat.FromBigInt(b.maxes[i]))
		origin.Set(i, bigrat.FromInt64(r.Seed()))

		if i != dims-1 {
			r.Advance(b.callIndices[i+1] - b.callIndices[i])
		}
	}

	return b.lattice.Transpose(), lower, upper, origin
}

func (b *Builder) filterResults(results []bigmatrix.Vector) []int64 {
	backStep := b.step.Combine(-b.callIndices[0])

	seeds := make([]int64, 0, len(results))
	for _, v := range results {
		seeds = append(seeds, backStep.NextSeed(v.At(0).Int64Low()))
	}

	if len(b.filteredSkips) == 0 {
		return seeds
	}

	filtered := seeds[:0]
	for _, seed := range seeds {
		ok := true
		for _, skip := range b.filteredSkips {
			r := lcg.FromInternalSeed(b.step, seed)
			if !skip.CheckState(&r) {
				ok = false
				break
			}
		}
		if ok {
			filtered = append(filtered, seed)
		}
	}
	return filtered
}

func (b *Builder) createLattice() {
	dims := b.dimensions

	sideLengths := make([]*big.Int, dims)
	for i := 0; i < dims; i++ {
		sideLengths[i] = new(big.Int).Add(new(big.Int).Sub(b.maxes[i], b.mins[i]), big.NewInt(1))
	}

	lcmAll := big.NewInt(1)
	for _, sl := range sideLengths {
		lcmAll = lcmBig(lcmAll, sl)
	}

	scales := bigmatrix.NewMatrix(dims, dims)
	for i := 0; i < dims; i++ {
		q := new(big.Int).Quo(lcmAll, sideLengths[i])
		scales.Set(i, i, bigrat.FromBigInt(q))
	}

	scaled := b.lattice.MulMatrix(scales)
	result := lll.ReduceDefault(scaled)

	scalesInv, err := ops.Inverse(scales)
	if err != nil {
		// scales is diagonal with strictly positive entries by
		// construction; singular here means a bug upstream.
		panic(err)
	}
	b.lattice = result.ReducedBasis.MulMatrix(scalesInv)
}

func lcmBig(a, b *big.Int) *big.Int {
	ax := new(big.Int).Abs(a)
	bx := new(big.Int).Abs(b)
	g := new(big.Int).GCD(nil, nil, ax, bx)
	return new(big.Int).Mul(new(big.Int).Quo(a, g), b)
}
