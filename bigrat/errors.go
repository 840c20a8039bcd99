// SPDX-License-Identifier: MIT
// Package bigrat: sentinel error set.

package bigrat

import "errors"

var (
	// ErrDivByZero is the panic value New, NewFromBig, Div and Inv raise
	// when an operation would divide by the zero Rat; no function returns it.
	ErrDivByZero = errors.New("bigrat: division by zero")
)
