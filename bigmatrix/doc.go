// SPDX-License-Identifier: MIT

// Package bigmatrix implements dense, row-major rational vectors and
// matrices with a fixed shape at construction. Mutation happens only
// through explicit in-place row operations (swap, scale, subtract-scaled,
// assign-row); every other operation returns a fresh value and never
// aliases the receiver's backing storage.
package bigmatrix
