// SPDX-License-Identifier: MIT

// Package poly provides sparse multivariate polynomials with exact rational
// coefficients over an open-ended, weighted generator set.
//
// What:
//
//   - Ring: an arena of interned generator names with integer weights. Generator
//     IDs are dense ints assigned in registration order; Clone lets a larger
//     ring extend a smaller one while keeping its IDs.
//   - Monomial: sparse exponent vector (sorted generator/exponent pairs).
//   - Poly: map monomial -> *big.Rat, zero terms dropped.
//   - WeightedVectors: enumeration of exponent vectors of a given weighted degree.
//
// Why:
//
//	The graded ring of Lyndon generators grows quickly with the weight bound,
//	so a dense or fixed-arity representation is not an option. Only the
//	monomials that actually occur are stored.
//
// Conventions:
//
//   - A Poly returned by any operation is a fresh value; values handed out by
//     caches are shared and must be treated as read-only. AddScaled is the only
//     mutating method and is meant for accumulators the caller owns.
//   - The weighted degree-reverse-lexicographic order orders terms for printing
//     and deterministic iteration. It never affects arithmetic.
//
// Complexity:
//
//   - Add: O(|p|+|q|), Mul: O(|p|·|q|·k) for monomials with k variables.
package poly
