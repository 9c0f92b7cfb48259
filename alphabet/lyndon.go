// SPDX-License-Identifier: MIT

package alphabet

// IsLyndon reports whether w is strictly smaller than each of its proper
// rotations. The empty word is not Lyndon; every single letter is.
// Implementation: w is Lyndon iff its Chen–Fox–Lyndon factorization has
// exactly one factor.
// Complexity: O(len(w)).
func IsLyndon(w Word) bool {
	if len(w) == 0 {
		return false
	}
	i, j, k := 0, 1, 0
	for j < len(w) && w[k] <= w[j] {
		if w[k] < w[j] {
			k = i
		} else {
			k++
		}
		j++
	}

	return j-k == len(w)
}

// Factorize returns the Chen–Fox–Lyndon factorization of w: the unique
// sequence of Lyndon words l1 >= l2 >= … >= lk whose concatenation is w.
// The empty word factorizes into the empty sequence.
// Implementation: Duval's algorithm.
// Complexity: O(len(w)) time, O(k) extra space.
func Factorize(w Word) []Word {
	var factors []Word
	n := len(w)
	i := 0
	for i < n {
		j, k := i+1, i
		for j < n && w[k] <= w[j] {
			if w[k] < w[j] {
				k = i
			} else {
				k++
			}
			j++
		}
		for i <= k {
			factors = append(factors, w[i:i+j-k])
			i += j - k
		}
	}

	return factors
}

// IndexWords returns every word of the given length over the index letters,
// in lexicographic order. Length 0 yields the single empty word.
// Complexity: O(n^length · length).
func (a *Alphabet) IndexWords(length int) []Word {
	if length < 0 {
		return nil
	}
	out := []Word{Empty}
	for step := 0; step < length; step++ {
		next := make([]Word, 0, len(out)*len(a.index))
		for _, w := range out {
			for _, l := range a.index {
				next = append(next, w+Word(string(rune(l))))
			}
		}
		out = next
	}

	return out
}

// LyndonWords returns the Lyndon words of weight L containing at most one odd
// letter, in lexicographic order.
//
// Implementation:
//   - Stage 1: for each odd letter of weight w <= L, emit it followed by every
//     index word of length L-w. The odd letter is smaller than every index
//     letter, so each such word is Lyndon whatever the suffix.
//   - Stage 2: emit the pure index Lyndon words of length L with the FKM
//     next-Lyndon-word iteration (extend by repetition, trim trailing maximal
//     symbols).
//
// Every Lyndon word with one odd letter starts with that letter, so the two
// stages partition the output and nothing is emitted twice.
// L <= 0 yields nil.
func (a *Alphabet) LyndonWords(L int) []Word {
	if L <= 0 {
		return nil
	}
	var out []Word
	for _, odd := range a.odd {
		w := a.weight[odd]
		if w > L {
			break
		}
		prefix := Word(string(rune(odd)))
		for _, suffix := range a.IndexWords(L - w) {
			out = append(out, prefix+suffix)
		}
	}

	return append(out, a.indexLyndonWords(L)...)
}

// indexLyndonWords runs the FKM iteration over the index letters and keeps
// the words of exactly length L.
func (a *Alphabet) indexLyndonWords(L int) []Word {
	k := len(a.index)
	var out []Word
	w := []int{-1}
	for len(w) > 0 {
		w[len(w)-1]++
		m := len(w)
		if m == L {
			letters := make([]Letter, m)
			for i, x := range w {
				letters[i] = a.index[x]
			}
			out = append(out, WordOf(letters...))
		}
		for len(w) < L {
			w = append(w, w[len(w)-m])
		}
		for len(w) > 0 && w[len(w)-1] == k-1 {
			w = w[:len(w)-1]
		}
	}

	return out
}

// LyndonWordsUpTo concatenates LyndonWords(1..D), i.e. the generator list of
// the graded ring ordered by weight and then lexicographically.
// D <= 0 yields nil.
func (a *Alphabet) LyndonWordsUpTo(D int) []Word {
	var out []Word
	for L := 1; L <= D; L++ {
		out = append(out, a.LyndonWords(L)...)
	}

	return out
}

// WordsOfWeight returns every word of total weight w with at most maxOdd odd
// letters, in lexicographic order. w == 0 yields the empty word.
func (a *Alphabet) WordsOfWeight(w, maxOdd int) []Word {
	if w < 0 {
		return nil
	}
	var out []Word
	letters := a.Letters()
	buf := make([]byte, 0, w)
	var rec func(rem, odd int)
	rec = func(rem, odd int) {
		if rem == 0 {
			out = append(out, Word(buf))
			return
		}
		for _, l := range letters {
			lw := a.weight[l]
			if lw > rem {
				continue
			}
			nextOdd := odd
			if l.IsOdd() {
				if odd >= maxOdd {
					continue
				}
				nextOdd++
			}
			buf = append(buf, byte(l))
			rec(rem-lw, nextOdd)
			buf = buf[:len(buf)-1]
		}
	}
	rec(w, 0)

	return out
}

// WordsUpToWeight concatenates WordsOfWeight(1..D, maxOdd).
func (a *Alphabet) WordsUpToWeight(D, maxOdd int) []Word {
	var out []Word
	for w := 1; w <= D; w++ {
		out = append(out, a.WordsOfWeight(w, maxOdd)...)
	}

	return out
}
