// SPDX-License-Identifier: MIT

package alphabet

import (
	"sort"
	"strings"
)

// Word is a finite sequence of letters. The empty word is the unit of both
// concatenation and the shuffle product.
type Word string

// Empty is the empty word.
const Empty Word = ""

// WordOf concatenates letters into a word.
func WordOf(letters ...Letter) Word {
	var b strings.Builder
	b.Grow(len(letters))
	for _, l := range letters {
		b.WriteByte(byte(l))
	}

	return Word(b.String())
}

// Len returns the number of letters in w.
func (w Word) Len() int { return len(w) }

// At returns the i-th letter of w.
func (w Word) At(i int) Letter { return Letter(w[i]) }

// First returns the leading letter; w must be non-empty.
func (w Word) First() Letter { return Letter(w[0]) }

// Rest returns w without its leading letter; w must be non-empty.
func (w Word) Rest() Word { return w[1:] }

// Prepend returns l·w.
func (w Word) Prepend(l Letter) Word { return Word(string(rune(l))) + w }

// Less reports whether w precedes o lexicographically (a proper prefix
// precedes its extensions).
func (w Word) Less(o Word) bool { return w < o }

// Rotation returns w[k:]·w[:k].
func (w Word) Rotation(k int) Word { return w[k:] + w[:k] }

// String returns the encoded word.
func (w Word) String() string { return string(w) }

// SortWords sorts ws in place in lexicographic order.
func SortWords(ws []Word) {
	sort.Slice(ws, func(i, j int) bool { return ws[i] < ws[j] })
}

// Permutations returns the distinct rearrangements of w in lexicographic order.
// Implementation: start from the sorted letters and iterate next-permutation.
// Complexity: O(P·len(w)) for P distinct permutations.
func Permutations(w Word) []Word {
	if len(w) == 0 {
		return []Word{Empty}
	}
	cur := []byte(w)
	sort.Slice(cur, func(i, j int) bool { return cur[i] < cur[j] })

	var out []Word
	for {
		out = append(out, Word(cur))
		if !nextPermutation(cur) {
			return out
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor in place and
// reports false when p already was the last permutation.
func nextPermutation(p []byte) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
