// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (possibly wrapped with an operation
// tag) and tests check them via errors.Is. Panics are reserved for invalid
// Option values.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape has a negative dimension
	// or when row slices passed to FromRows have unequal lengths.
	// Zero rows or zero columns are valid shapes.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilEntry indicates a nil *big.Rat passed to Set or FromRows.
	ErrNilEntry = errors.New("matrix: nil entry")

	// ErrModulusDividesDenominator is returned by modular rank when an entry's
	// denominator has no inverse modulo the chosen prime.
	ErrModulusDividesDenominator = errors.New("matrix: modulus divides an entry denominator")
)

// Operation tags for matrixErrorf.
const (
	opFromRows = "FromRows"
	opRank     = "Rank"
	opNullity  = "Nullity"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
