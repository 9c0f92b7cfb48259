// SPDX-License-Identifier: MIT

package alphabet

import "fmt"

// Rendering ranges. Each family owns one 26-letter block of ASCII.
const (
	firstOdd   Letter = 'A'
	firstIndex Letter = 'a'

	// MaxFamilySize is the number of distinct letters a family can render.
	MaxFamilySize = 26

	// IndexWeight is the weight of every index letter.
	IndexWeight = 1

	// FirstOddWeight is the weight of the smallest odd letter ('A').
	FirstOddWeight = 3
)

// Letter is a single symbol of the encoded alphabet.
type Letter byte

// String renders the letter as its one-character encoding.
func (l Letter) String() string { return string(rune(l)) }

// IsOdd reports whether l lies in the odd-letter rendering block.
func (l Letter) IsOdd() bool { return l >= firstOdd && l < firstOdd+MaxFamilySize }

// IsIndex reports whether l lies in the index-letter rendering block.
func (l Letter) IsIndex() bool { return l >= firstIndex && l < firstIndex+MaxFamilySize }

// Alphabet is the immutable letter set for one weight bound and index-set size.
//
// Index letters 'a'.. carry weight 1; odd letters 'A'.. carry weights
// 3,5,7,… up to the largest odd number not exceeding the weight bound.
// An Alphabet is safe for concurrent reads.
type Alphabet struct {
	weightBound int
	index       []Letter
	odd         []Letter
	weight      [256]int // 0 marks "not a letter"
}

// New builds the alphabet for weight bound D and n index letters.
// Stage 1 (Validate): n in [1,26]; odd family size (D-1)/2 at most 26.
// Stage 2 (Prepare): assign letters and the weight table.
// A non-positive D is legal and produces an alphabet without odd letters.
// Complexity: O(n + D).
func New(weightBound, indices int) (*Alphabet, error) {
	if indices < 1 {
		return nil, alphabetErrorf(opNew, ErrInvalidIndexCount)
	}
	if indices > MaxFamilySize {
		return nil, alphabetErrorf(opNew, fmt.Errorf("%d index letters: %w", indices, ErrAlphabetCapacity))
	}
	oddCount := OddLetterCount(weightBound)
	if oddCount > MaxFamilySize {
		return nil, alphabetErrorf(opNew, fmt.Errorf("%d odd letters for weight bound %d: %w",
			oddCount, weightBound, ErrAlphabetCapacity))
	}

	a := &Alphabet{
		weightBound: weightBound,
		index:       make([]Letter, indices),
		odd:         make([]Letter, oddCount),
	}
	for i := range a.index {
		l := firstIndex + Letter(i)
		a.index[i] = l
		a.weight[l] = IndexWeight
	}
	for k := range a.odd {
		l := firstOdd + Letter(k)
		a.odd[k] = l
		a.weight[l] = FirstOddWeight + 2*k
	}

	return a, nil
}

// OddLetterCount returns how many odd letters (weights 3,5,…) fit under D.
func OddLetterCount(weightBound int) int {
	if weightBound < FirstOddWeight {
		return 0
	}

	return (weightBound-1)/2
}

// WeightBound returns the bound D the alphabet was built for.
func (a *Alphabet) WeightBound() int { return a.weightBound }

// IndexCount returns the size of the index set.
func (a *Alphabet) IndexCount() int { return len(a.index) }

// IndexLetters returns a copy of the index letters in order.
func (a *Alphabet) IndexLetters() []Letter { return append([]Letter(nil), a.index...) }

// OddLetters returns a copy of the odd letters in increasing weight order.
func (a *Alphabet) OddLetters() []Letter { return append([]Letter(nil), a.odd...) }

// Letters returns every letter in the total order (odd letters first).
func (a *Alphabet) Letters() []Letter {
	out := make([]Letter, 0, len(a.odd)+len(a.index))
	out = append(out, a.odd...)

	return append(out, a.index...)
}

// Contains reports whether l belongs to this alphabet.
func (a *Alphabet) Contains(l Letter) bool { return a.weight[l] > 0 }

// Weight returns the weight of l, or 0 if l is not in the alphabet.
func (a *Alphabet) Weight(l Letter) int { return a.weight[l] }

// Position returns the 0-based position of l within its own family, or -1.
// For index letters this is the index-set element the letter stands for.
func (a *Alphabet) Position(l Letter) int {
	switch {
	case !a.Contains(l):
		return -1
	case l.IsIndex():
		return int(l - firstIndex)
	default:
		return int(l - firstOdd)
	}
}

// OddLetterOfWeight returns the odd letter of weight w, if the alphabet has one.
func (a *Alphabet) OddLetterOfWeight(w int) (Letter, bool) {
	if w < FirstOddWeight || w%2 == 0 {
		return 0, false
	}
	k := (w - FirstOddWeight) / 2
	if k >= len(a.odd) {
		return 0, false
	}

	return a.odd[k], true
}

// WordWeight returns the sum of the letter weights of w.
// Letters outside the alphabet contribute 0; use Validate to reject them.
func (a *Alphabet) WordWeight(w Word) int {
	total := 0
	for i := 0; i < len(w); i++ {
		total += a.weight[w[i]]
	}

	return total
}

// OddCount returns how many odd letters w contains.
func (a *Alphabet) OddCount(w Word) int {
	count := 0
	for i := 0; i < len(w); i++ {
		if Letter(w[i]).IsOdd() {
			count++
		}
	}

	return count
}

// Validate returns ErrUnknownLetter if w uses a byte outside the alphabet.
func (a *Alphabet) Validate(w Word) error {
	for i := 0; i < len(w); i++ {
		if !a.Contains(Letter(w[i])) {
			return alphabetErrorf(opValidate, fmt.Errorf("%q at %d in %q: %w", w[i], i, string(w), ErrUnknownLetter))
		}
	}

	return nil
}
