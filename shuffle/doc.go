// SPDX-License-Identifier: MIT

// Package shuffle implements the free shuffle algebra over an encoded alphabet
// and its change of basis to the dual Poincaré–Birkhoff–Witt basis indexed by
// words.
//
// What:
//
//   - Element: finite map word -> rational coefficient with the shuffle
//     product, concatenation by a letter, and linear operations.
//   - Expander: the recursive basis expansion S_w of a dual-PBW basis word w
//     in the word basis, memoized in a Store:
//     S_ε = 1; S_x = x for a letter; S_{x·u} = x·S_u for a Lyndon word x·u;
//     otherwise S_w = (S_{l1} ш … ш S_{lk}) / ∏ m_i! for the Lyndon
//     factorization w = l1…lk with multiplicities m_i.
//   - Converter: ToDualPBW, the greedy extraction that repeatedly removes the
//     lexicographically largest word, and ToShuffle, its inverse.
//   - Precompute: a bounded errgroup worker pool filling a shared Store, with
//     singleflight collapsing concurrent expansions of the same word.
//
// Why:
//
//	S_w has leading word w with coefficient 1 and every other word of S_w is a
//	rearrangement of w that sorts below it. Subtracting c·S_m for the largest
//	remaining word m therefore never reintroduces a word >= m, and the
//	extraction terminates with the dual-PBW coordinates.
//
// Concurrency:
//
//	Expansions are pure functions of the word, so two workers racing on the
//	same word produce identical values; the Store is a work-avoidance cache,
//	not a lock. Once MarkPrecomputed is called, a cache miss is an error
//	(ErrNotPrecomputed) instead of a recomputation.
//
// Errors:
//
//   - ErrNotPrecomputed  lookup miss after MarkPrecomputed
//   - ErrNotTriangular   the greedy step failed to cancel its leading word
//   - Store errors and worker errors are returned wrapped, never swallowed.
package shuffle
