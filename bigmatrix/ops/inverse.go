// SPDX-License-Identifier: MIT

// Package ops provides advanced operations (exact LU decomposition and
// inversion) over the bigmatrix package's rational matrices.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dungeoncrack/bigmatrix"
	"github.com/katalvlaran/dungeoncrack/bigrat"
)

// ErrSingular is returned when no nonzero pivot can be found for a column
// during decomposition.
var ErrSingular = errors.New("ops: matrix is singular")

// Inverse returns the exact rational inverse of the square matrix m via
// partial-pivoting LU decomposition, or an error if m is not square or
// singular.
//
// Blueprint:
//
//	Stage 1 (Validate): ensure m is square.
//	Stage 2 (Decompose): partial-pivot LU in place, recording row swaps
//	  directly into an identity-seeded companion matrix (the standard
//	  "augmented identity" inversion trick, exact over rationals).
//	Stage 3 (Forward substitution): solve L·y = P·e_col for each column.
//	Stage 4 (Back substitution): solve U·x = y for each column.
//	Stage 5 (Finalize): assemble columns into the inverse and return.
func Inverse(m bigmatrix.Matrix) (bigmatrix.Matrix, error) {
	// Stage 1: validate shape.
	size := m.RowCount()
	if !m.IsSquare() {
		return bigmatrix.Matrix{}, fmt.Errorf("Inverse: non-square %dx%d: %w", size, m.ColCount(), bigmatrix.ErrNonSquare)
	}

	work := m.Clone()
	inv := bigmatrix.Identity(size)

	// Stage 2: decomposition with partial pivoting, combined in-place LU
	// and running companion-matrix swaps (ports lu_decomposition.rs).
	for i := 0; i < size; i++ {
		pivotRow := -1
		biggest := bigrat.Zero()
		for row := i; row < size; row++ {
			d := work.At(row, i).Abs()
			if d.Cmp(biggest) > 0 {
				biggest = d
				pivotRow = row
			}
		}
		if pivotRow == -1 {
			return bigmatrix.Matrix{}, fmt.Errorf("Inverse: no pivot in column %d: %w", i, ErrSingular)
		}

		inv.SwapRows(i, pivotRow)
		if pivotRow != i {
			work.SwapRows(i, pivotRow)
		}

		for row := i + 1; row < size; row++ {
			work.Set(row, i, work.At(row, i).Div(work.At(i, i)))
		}
		for row := i + 1; row < size; row++ {
			for col := i + 1; col < size; col++ {
				work.Set(row, col, work.At(row, col).Sub(work.At(row, i).Mul(work.At(i, col))))
			}
		}
	}

	// Stage 3: forward substitution (L has an implicit unit diagonal).
	for dcol := 0; dcol < size; dcol++ {
		for row := 0; row < size; row++ {
			for col := 0; col < row; col++ {
				inv.Set(row, dcol, inv.At(row, dcol).Sub(work.At(row, col).Mul(inv.At(col, dcol))))
			}
		}
	}

	// Stage 4: back substitution against U's diagonal.
	for dcol := 0; dcol < size; dcol++ {
		for row := size - 1; row >= 0; row-- {
			for col := size - 1; col > row; col-- {
				inv.Set(row, dcol, inv.At(row, dcol).Sub(work.At(row, col).Mul(inv.At(col, dcol))))
			}
			inv.Set(row, dcol, inv.At(row, dcol).Div(work.At(row, row)))
		}
	}

	// Stage 5: inv now holds the exact inverse.
	return inv, nil
}
