// SPDX-License-Identifier: MIT

// Package alphabet implements the weighted-letter alphabet that underlies the
// shuffle algebra and the graded ring of Lyndon generators.
//
// What:
//
//   - Letter: one byte of the encoded alphabet. Index letters are rendered
//     'a','b','c',… (weight 1, one per element of the index set); odd letters
//     are rendered 'A','B','C',… with weights 3,5,7,….
//   - Word: an ordered sequence of letters, stored as a string. Byte order is
//     the total order on letters, so every odd letter sorts before every index
//     letter and plain string comparison is the lexicographic word order.
//   - Lyndon words: IsLyndon, Factorize (Chen–Fox–Lyndon via Duval), and the
//     enumeration of Lyndon words of a given weight with at most one odd letter.
//
// Why:
//
//	A Lyndon word that contains exactly one odd letter must begin with it (a
//	Lyndon word starts with its smallest letter), and any word over index
//	letters prefixed by an odd letter is Lyndon. Enumeration therefore splits
//	into "odd letter + any index word" and the classic FKM enumeration of pure
//	index Lyndon words.
//
// Complexity:
//
//   - IsLyndon / Factorize: O(len(w)).
//   - LyndonWords(L): output-sensitive, O(n^L) for n index letters.
//
// Errors:
//
//   - ErrAlphabetCapacity   more than 26 letters requested in one family
//   - ErrInvalidIndexCount  index-set size < 1
//   - ErrUnknownLetter      a word uses a byte outside the alphabet
package alphabet
