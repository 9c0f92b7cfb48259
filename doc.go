// Package thetasharp computes upper bounds on the dimension of the kernel of
// θ#, the map sending the polylogarithmic generators log, Li_1, …, Li_D of a
// Chabauty–Kim computation to functions on the Φ side.
//
// 🚀 What is thetasharp?
//
//	An exact-arithmetic, concurrency-friendly library that brings together:
//		• Alphabets & words: odd letters A, B, … of weight 3, 5, …, index letters
//		  a, b, … of weight 1, Lyndon enumeration and factorization
//		• Shuffle algebra: shuffle product, dual-PBW expansion, greedy conversion
//		• Graded ring: one polynomial generator per Lyndon word
//		• θ#: images of log and Li_n, evaluation at integer points
//		• Matrices: exact rank and nullity over ℚ, or modulo a large prime
//
// ✨ Why thetasharp?
//
//   - Exact – every coefficient is a big.Rat, every rank is exact or checked
//   - Parallel – basis expansions are precomputed by a bounded worker pool
//     sharing one cache, optionally persisted with Badger
//   - Observable – slog logging and Prometheus metrics throughout
//
// Under the hood:
//
//	alphabet/           — letters, weights, words, Lyndon words
//	shuffle/            — shuffle algebra, dual-PBW Expander and Converter
//	shuffle/badgerstore — persistent expansion cache
//	graded/             — polynomial ring on Lyndon generators
//	poly/               — sparse weighted polynomials over ℚ
//	theta/              — θ# images, matrix assembly, kernel bounds
//	matrix/             — exact dense matrices, rank, nullity
//	config/             — YAML driver configuration
//	cmd/kernelbound     — command-line driver
//
// Quick example (one index, D = 2, degree 2):
//
//	n, _ := theta.UpperBoundOnDimensionOfKernel(ctx, 2, 2,
//		theta.WithIndices(1), theta.WithFixedTestIntegers())
//	// n == 1: Li2 = 1/2·log·Li1
//
//	go get github.com/katalvlaran/thetasharp
package thetasharp
