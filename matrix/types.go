// SPDX-License-Identifier: MIT

package matrix

import "math/big"

// Matrix is a two-dimensional mutable array of exact rationals.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows (>= 0).
	Rows() int

	// Cols returns the number of columns (>= 0).
	Cols() int

	// At returns a copy of the element at (i, j), or ErrOutOfRange.
	At(i, j int) (*big.Rat, error)

	// Set stores a copy of v at (i, j), or returns ErrOutOfRange / ErrNilEntry.
	Set(i, j int, v *big.Rat) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
