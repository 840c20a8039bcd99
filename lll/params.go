// SPDX-License-Identifier: MIT

package lll

import (
	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// Params configures an LLL reduction run.
type Params struct {
	// Delta is the LLL reduction parameter, 1/4 < delta <= 1. The closer
	// to 1, the stronger (and slower) the reduction.
	Delta bigrat.Rat
	// MaxStage caps how many basis vectors are processed; -1 means all of them.
	MaxStage int
}

// Recommended returns the delta = 99/100 parameter set this spec requires.
func Recommended() Params {
	return Params{Delta: bigrat.New(99, 100), MaxStage: -1}
}

// DefaultParams returns delta = 75/100, LattiCG's library default.
func DefaultParams() Params {
	return Params{Delta: bigrat.New(75, 100), MaxStage: -1}
}

// Result is the outcome of a Reduce call.
type Result struct {
	// NumDependentVectors is how many input rows were linear-dependency
	// kernel elements and were stripped from ReducedBasis.
	NumDependentVectors int
	ReducedBasis        bigmatrix.Matrix
	Transformations     bigmatrix.Matrix
}
