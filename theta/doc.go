// SPDX-License-Identifier: MIT

// Package theta computes the images of log and Li_n under θ# and bounds the
// dimension of the kernel of θ# in a fixed degree.
//
// What:
//
//   - Evaluator: holds the alphabet, the graded ring of Lyndon generators and
//     the combined ring that adds the Φ generators phi0t{i}, phi1t{i}
//     (weight 1, one pair per index letter) and phisigma{w} (one per odd
//     letter of weight w).
//   - Log / Li(n): the θ# images as polynomials in the combined ring,
//     symbolic (Lyndon generators kept) or evaluated (Lyndon generators
//     replaced by an Assignment and the result divided by its content).
//   - Matrix(v): one row per monomial of weighted degree v in
//     {log, Li_1, …, Li_D}, one column per Φ monomial of degree v, entries read
//     off the product of the images.
//   - UpperBoundOnDimensionOfKernel: rows minus rank of the evaluated matrix.
//
// Why an upper bound:
//
//	Substituting numbers for the Lyndon generators is a ring homomorphism, so
//	any linear relation among the symbolic rows survives it; the evaluated
//	matrix can only lose rank. Its row nullity is therefore never below the
//	kernel dimension, and equals it unless the assignment is a root of some
//	non-zero minor.
//
// Caches:
//
//	Images are memoized under "log" / "Li{n}" in two independent caches. The
//	symbolic cache lives as long as the Evaluator; the evaluated cache is
//	dropped whenever a different Assignment is used.
//
// Errors:
//
//   - ErrInvalidInvocation   evaluation requested without an assignment
//   - ErrDegreeOutOfRange    Li(n) with n < 1 or n > weight bound
//   - ErrInvalidWeightBound  weight bound < 1
//   - ErrInhomogeneous       an image product left the degree-v column set
package theta
