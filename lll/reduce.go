// SPDX-License-Identifier: MIT

package lll

import (
	"log"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// Logger receives long-running-reduction progress diagnostics.
var Logger = log.New(log.Writer(), "[lll] ", log.LstdFlags)

// Reduce performs LLL basis reduction on lattice, returning the reduced
// basis, the transformation matrix mapping it back to the input basis,
// and the count of stripped zero (linearly dependent) rows.
func Reduce(lattice bigmatrix.Matrix, params Params) Result {
	nbRows := lattice.RowCount()
	nbCols := lattice.ColCount()

	basis := lattice.Clone()
	baseGSO := bigmatrix.NewMatrix(nbRows, nbCols)
	mu := bigmatrix.NewMatrix(nbRows, nbRows)
	norms := bigmatrix.NewVector(nbRows)
	coordinates := bigmatrix.Identity(nbRows)

	baseGSO.SetRow(0, basis.Row(0))
	norms.Set(0, basis.Row(0).MagnitudeSq())

	k := 1
	kmax := 0
	updateGSO := true
	n := nbRows
	if params.MaxStage != -1 {
		n = params.MaxStage
	}
	iteration := uint64(0)

	for k < n {
		iteration++
		if iteration%1000 == 0 {
			Logger.Printf("iteration %d, k=%d/%d", iteration, k, n)
		}
		if k > kmax && updateGSO {
			kmax = k
			updateGSOAt(basis, baseGSO, mu, norms, k)
		}

		red(basis, coordinates, mu, k, k-1)

		if testCondition(mu, norms, k, params.Delta) {
			swapg(basis, coordinates, baseGSO, mu, norms, k, kmax)
			if k > 1 {
				k--
			} else {
				k = 1
			}
			updateGSO = false
		} else {
			if k >= 2 {
				for l := k - 2; l >= 0; l-- {
					red(basis, coordinates, mu, k, l)
				}
			}
			k++
			updateGSO = true
		}
	}

	p := countZeroRows(basis)
	if p > 0 {
		newRows := nbRows - p
		basis = basis.Submatrix(p, 0, newRows, nbCols)
		coordinates = coordinates.Submatrix(p, 0, newRows, coordinates.ColCount())
	}

	return Result{
		NumDependentVectors: p,
		ReducedBasis:        basis,
		Transformations:     coordinates,
	}
}

// ReduceDefault reduces lattice using the recommended delta = 99/100.
func ReduceDefault(lattice bigmatrix.Matrix) Result {
	return Reduce(lattice, Recommended())
}

func countZeroRows(basis bigmatrix.Matrix) int {
	p := 0
	for i := 0; i < basis.RowCount(); i++ {
		if basis.Row(i).IsZero() {
			p++
		}
	}
	return p
}

func updateGSOAt(basis, baseGSO, mu bigmatrix.Matrix, norms bigmatrix.Vector, k int) {
	newRow := basis.Row(k)
	for j := 0; j < k; j++ {
		if !norms.At(j).IsZero() {
			muKJ := basis.Row(k).Dot(baseGSO.Row(j)).Div(norms.At(j))
			mu.Set(k, j, muKJ)
			newRow.SubAssign(baseGSO.Row(j).MulScalar(muKJ))
		} else {
			mu.Set(k, j, bigrat.Zero())
		}
	}
	baseGSO.SetRow(k, newRow)
	norms.Set(k, newRow.MagnitudeSq())
}

func testCondition(mu bigmatrix.Matrix, norms bigmatrix.Vector, k int, delta bigrat.Rat) bool {
	muTemp := mu.At(k, k-1)
	factor := delta.Sub(muTemp.Mul(muTemp))
	return norms.At(k).Cmp(norms.At(k-1).Mul(factor)) < 0
}

func red(basis, coordinates, mu bigmatrix.Matrix, i, j int) {
	r := mu.At(i, j).Round()
	if r.Sign() == 0 {
		return
	}
	rRat := bigrat.FromBigInt(r)

	rowJ := basis.Row(j).MulScalar(rRat)
	rowI := basis.Row(i)
	rowI.SubAssign(rowJ)
	basis.SetRow(i, rowI)

	coordJ := coordinates.Row(j).MulScalar(rRat)
	coordI := coordinates.Row(i)
	coordI.SubAssign(coordJ)
	coordinates.SetRow(i, coordI)

	mu.Set(i, j, mu.At(i, j).Sub(rRat))

	for col := 0; col < j; col++ {
		mu.Set(i, col, mu.At(i, col).Sub(mu.At(j, col).Mul(rRat)))
	}
}

func swapg(basis, coordinates, baseGSO, mu bigmatrix.Matrix, norms bigmatrix.Vector, k, kmax int) {
	basis.SwapRows(k, k-1)
	coordinates.SwapRows(k, k-1)

	if k > 1 {
		for j := 0; j <= k-2; j++ {
			swapMuElements(mu, k, j, k-1, j)
		}
	}

	tmu := mu.At(k, k-1)
	tb := norms.At(k).Add(tmu.Mul(tmu).Mul(norms.At(k - 1)))

	switch {
	case tb.IsZero():
		norms.Set(k, norms.At(k-1))
		norms.Set(k-1, bigrat.Zero())
		baseGSO.SwapRows(k, k-1)
		for i := k + 1; i <= kmax; i++ {
			mu.Set(i, k, mu.At(i, k-1))
			mu.Set(i, k-1, bigrat.Zero())
		}

	case norms.At(k).IsZero() && !tmu.IsZero():
		norms.Set(k-1, tb)
		baseGSO.SetRow(k-1, baseGSO.Row(k-1).MulScalar(tmu))
		mu.Set(k, k-1, tmu.Inv())
		for i := k + 1; i <= kmax; i++ {
			mu.Set(i, k-1, mu.At(i, k-1).Div(tmu))
		}

	default:
		t := norms.At(k - 1).Div(tb)
		mu.Set(k, k-1, tmu.Mul(t))

		b := baseGSO.Row(k - 1)
		gsoK := baseGSO.Row(k)

		newGSOKm1 := gsoK.Add(b.MulScalar(tmu))
		bkOverTB := norms.At(k).Div(tb)
		newMuKK1 := mu.At(k, k-1)
		newGSOK := b.MulScalar(bkOverTB).Sub(gsoK.MulScalar(newMuKK1))

		baseGSO.SetRow(k-1, newGSOKm1)
		baseGSO.SetRow(k, newGSOK)

		norms.Set(k, norms.At(k).Mul(t))
		norms.Set(k-1, tb)

		for i := k + 1; i <= kmax; i++ {
			tVal := mu.At(i, k)
			newIK := mu.At(i, k-1).Sub(tmu.Mul(tVal))
			newIKm1 := tVal.Add(mu.At(k, k-1).Mul(newIK))
			mu.Set(i, k, newIK)
			mu.Set(i, k-1, newIKm1)
		}
	}
}

func swapMuElements(mu bigmatrix.Matrix, r1, c1, r2, c2 int) {
	a, b := mu.At(r1, c1), mu.At(r2, c2)
	mu.Set(r1, c1, b)
	mu.Set(r2, c2, a)
}
