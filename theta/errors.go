// SPDX-License-Identifier: MIT

package theta

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInvocation is returned when an evaluated image or matrix is
	// requested without an Assignment, or with one that does not cover every
	// Lyndon generator.
	ErrInvalidInvocation = errors.New("theta: evaluation requested without a usable assignment")

	// ErrDegreeOutOfRange indicates Li(n) outside 1..weight bound.
	ErrDegreeOutOfRange = errors.New("theta: Li index out of range")

	// ErrInvalidWeightBound indicates a weight bound below 1.
	ErrInvalidWeightBound = errors.New("theta: weight bound must be >= 1")

	// ErrInhomogeneous signals a product term outside the degree-v Φ columns.
	ErrInhomogeneous = errors.New("theta: image product is not homogeneous")
)

const (
	opNew        = "New"
	opLi         = "Li"
	opLog        = "Log"
	opMatrix     = "Matrix"
	opSymbolic   = "SymbolicMatrix"
	opExact      = "ExactKernelDimension"
	opUpperBound = "UpperBound"
	opPrecompute = "Precompute"
)

// thetaErrorf wraps err with an operation tag, preserving it for errors.Is.
func thetaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
