// SPDX-License-Identifier: MIT

// Package graded identifies the shuffle algebra with the free graded
// commutative polynomial ring generated by Lyndon words.
//
// Generators are named "S"+word, one per Lyndon word of weight <= D, with the
// word's weight as grading. A dual-PBW basis word with Lyndon factorization
// l1^k1 … lm^km maps to the monomial S_l1^k1 … S_lm^km / (k1! … km!), so the
// bridge FromDualPBW is an isomorphism of graded algebras. FromShuffle runs
// the shuffle-side basis change first.
//
// Registration order is by weight, then lexicographically, making the ring
// for a smaller weight bound a prefix of the ring for a larger one.
package graded
