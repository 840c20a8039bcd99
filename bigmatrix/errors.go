// SPDX-License-Identifier: MIT
// Package bigmatrix: sentinel error set.
//
// Every message is prefixed with "bigmatrix: ..." for consistency across
// logs. The package raises these as panic values, often wrapped with
// fmt.Errorf for context (ops.Inverse returns ErrNonSquare as a wrapped
// error instead); match them with errors.Is.

package bigmatrix

import "errors"

var (
	// ErrBadShape signals that a requested shape is invalid (rows or cols <= 0).
	ErrBadShape = errors.New("bigmatrix: invalid shape")

	// ErrDimensionMismatch signals that two operands have incompatible shapes.
	ErrDimensionMismatch = errors.New("bigmatrix: dimension mismatch")

	// ErrOutOfRange signals that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("bigmatrix: index out of range")

	// ErrNonSquare signals that an operation requires a square matrix.
	ErrNonSquare = errors.New("bigmatrix: matrix is not square")
)
