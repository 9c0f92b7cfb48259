// SPDX-License-Identifier: MIT

// Package matrix provides exact rational matrices and rank computations.
//
// What & Why:
//
//	Dense stores *big.Rat entries in row-major order. Rank is computed exactly
//	by clearing denominators row by row and running fraction-free (Bareiss)
//	elimination over big.Int, so no intermediate rational normalization is
//	needed and every division is exact. A modular rank over a prime field is
//	available as a faster probabilistic alternative; it never exceeds the
//	exact rank.
//
//	Zero-row and zero-column matrices are valid and have rank 0.
//
// Complexity:
//
//	At/Set: O(1). Clone: O(r*c).
//	Rank (exact): O(r*c*min(r,c)) big-integer operations whose size grows
//	linearly with the elimination step. Rank (modular): same count of
//	word-sized operations on reduced residues.
//
// Errors:
//
//	ErrBadShape, ErrOutOfRange, ErrNilEntry, ErrNilMatrix,
//	ErrModulusDividesDenominator.
package matrix
