// SPDX-License-Identifier: MIT

package shuffle

import (
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/thetasharp/alphabet"
)

// WordTerm is one (word, coefficient) pair; Coef is a copy.
type WordTerm struct {
	Word alphabet.Word
	Coef *big.Rat
}

// wordMap is the sparse word -> coefficient storage shared by Element and
// DualPBW. Values handed out by caches are read-only; only fresh maps built
// inside this package are mutated.
type wordMap struct {
	terms map[alphabet.Word]*big.Rat
}

func (m *wordMap) add(w alphabet.Word, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	if m.terms == nil {
		m.terms = make(map[alphabet.Word]*big.Rat)
	}
	if cur, ok := m.terms[w]; ok {
		cur.Add(cur, c)
		if cur.Sign() == 0 {
			delete(m.terms, w)
		}
		return
	}
	m.terms[w] = new(big.Rat).Set(c)
}

func (m wordMap) clone() wordMap {
	out := wordMap{}
	for w, c := range m.terms {
		out.add(w, c)
	}

	return out
}

// Len returns the number of non-zero terms.
func (m wordMap) Len() int { return len(m.terms) }

// IsZero reports whether there are no terms.
func (m wordMap) IsZero() bool { return len(m.terms) == 0 }

// Coefficient returns a copy of the coefficient of w (0 if absent).
func (m wordMap) Coefficient(w alphabet.Word) *big.Rat {
	if c, ok := m.terms[w]; ok {
		return new(big.Rat).Set(c)
	}

	return new(big.Rat)
}

// Support returns the words with non-zero coefficient in lexicographic order.
func (m wordMap) Support() []alphabet.Word {
	out := make([]alphabet.Word, 0, len(m.terms))
	for w := range m.terms {
		out = append(out, w)
	}
	alphabet.SortWords(out)

	return out
}

// Terms returns the terms in lexicographic word order.
func (m wordMap) Terms() []WordTerm {
	out := make([]WordTerm, 0, len(m.terms))
	for _, w := range m.Support() {
		out = append(out, WordTerm{Word: w, Coef: new(big.Rat).Set(m.terms[w])})
	}

	return out
}

func (m wordMap) equal(o wordMap) bool {
	if len(m.terms) != len(o.terms) {
		return false
	}
	for w, c := range m.terms {
		d, ok := o.terms[w]
		if !ok || c.Cmp(d) != 0 {
			return false
		}
	}

	return true
}

// max returns the lexicographically largest word and its coefficient.
func (m wordMap) max() (alphabet.Word, *big.Rat, bool) {
	var best alphabet.Word
	found := false
	for w := range m.terms {
		if !found || best < w {
			best, found = w, true
		}
	}
	if !found {
		return "", nil, false
	}

	return best, m.terms[best], true
}

// String renders terms in word order as "c*w + …".
func (m wordMap) String() string {
	if len(m.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(m.terms))
	for _, t := range m.Terms() {
		w := string(t.Word)
		if w == "" {
			w = "1"
		}
		parts = append(parts, fmt.Sprintf("%s*%s", t.Coef.RatString(), w))
	}

	return strings.Join(parts, " + ")
}

// MarshalJSON encodes the terms as {"word": "p/q", …}.
func (m wordMap) MarshalJSON() ([]byte, error) {
	raw := make(map[string]string, len(m.terms))
	for w, c := range m.terms {
		raw[string(w)] = c.RatString()
	}

	return json.Marshal(raw)
}

func (m *wordMap) unmarshal(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return shuffleErrorf(opDecode, err)
	}
	m.terms = nil
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c, ok := new(big.Rat).SetString(raw[k])
		if !ok {
			return shuffleErrorf(opDecode, fmt.Errorf("coefficient %q of %q is not rational", raw[k], k))
		}
		m.add(alphabet.Word(k), c)
	}

	return nil
}

// Element is a vector of the shuffle algebra in the word basis.
// The zero value is the zero element. Elements are immutable once returned.
type Element struct {
	wordMap
}

// Zero returns the zero element.
func Zero() Element { return Element{} }

// One returns the unit, the empty word with coefficient 1.
func One() Element { return WordElement(alphabet.Empty) }

// WordElement returns 1·w.
func WordElement(w alphabet.Word) Element {
	return Term(big.NewRat(1, 1), w)
}

// Term returns c·w.
func Term(c *big.Rat, w alphabet.Word) Element {
	x := Element{}
	x.add(w, c)

	return x
}

// FromTerms builds an element from a word -> coefficient map (values copied).
func FromTerms(terms map[alphabet.Word]*big.Rat) Element {
	x := Element{}
	for w, c := range terms {
		x.add(w, c)
	}

	return x
}

// Equal reports whether x and y have the same terms.
func (x Element) Equal(y Element) bool { return x.equal(y.wordMap) }

// Add returns x + y.
func (x Element) Add(y Element) Element { return x.addScaled(y, big.NewRat(1, 1)) }

// Sub returns x - y.
func (x Element) Sub(y Element) Element { return x.addScaled(y, big.NewRat(-1, 1)) }

// Scale returns c·x.
func (x Element) Scale(c *big.Rat) Element { return Zero().addScaled(x, c) }

func (x Element) addScaled(y Element, c *big.Rat) Element {
	out := Element{x.clone()}
	tmp := new(big.Rat)
	for w, d := range y.terms {
		out.add(w, tmp.Mul(d, c))
	}

	return out
}

// Concat returns l·x: the letter l prepended to every word of x.
func (x Element) Concat(l alphabet.Letter) Element {
	out := Element{}
	for w, c := range x.terms {
		out.add(w.Prepend(l), c)
	}

	return out
}

// Shuffle returns the shuffle product x ш y.
// Complexity: O(|x|·|y|·C) where C bounds the number of distinct shuffles of
// two words.
func (x Element) Shuffle(y Element) Element {
	out := Element{}
	tmp := new(big.Rat)
	cnt := new(big.Rat)
	for u, cu := range x.terms {
		for v, cv := range y.terms {
			for w, n := range ShuffleWords(u, v) {
				cnt.SetInt(n)
				tmp.Mul(cu, cv)
				out.add(w, tmp.Mul(tmp, cnt))
			}
		}
	}

	return out
}

// MarshalJSON encodes the element as a word -> rational-string object.
func (x Element) MarshalJSON() ([]byte, error) { return x.wordMap.MarshalJSON() }

// UnmarshalJSON decodes the form written by MarshalJSON.
func (x *Element) UnmarshalJSON(data []byte) error { return x.unmarshal(data) }

// ShuffleWords returns the multiset of interleavings of u and v as
// word -> multiplicity.
//
// Implementation: memoized recursion on suffix positions (i, j):
// sh(u[i:], v[j:]) = u[i]·sh(u[i+1:], v[j:]) + v[j]·sh(u[i:], v[j+1:]).
// Multiplicities are bounded by binomial(|u|+|v|, |u|), so big.Int keeps long
// words exact.
func ShuffleWords(u, v alphabet.Word) map[alphabet.Word]*big.Int {
	type key struct{ i, j int }
	memo := make(map[key]map[alphabet.Word]*big.Int)
	var rec func(i, j int) map[alphabet.Word]*big.Int
	rec = func(i, j int) map[alphabet.Word]*big.Int {
		if i == len(u) {
			return map[alphabet.Word]*big.Int{v[j:]: big.NewInt(1)}
		}
		if j == len(v) {
			return map[alphabet.Word]*big.Int{u[i:]: big.NewInt(1)}
		}
		k := key{i, j}
		if r, ok := memo[k]; ok {
			return r
		}
		out := make(map[alphabet.Word]*big.Int)
		for w, n := range rec(i+1, j) {
			accumulate(out, u[i:i+1]+w, n)
		}
		for w, n := range rec(i, j+1) {
			accumulate(out, v[j:j+1]+w, n)
		}
		memo[k] = out

		return out
	}

	return rec(0, 0)
}

func accumulate(m map[alphabet.Word]*big.Int, w alphabet.Word, n *big.Int) {
	if cur, ok := m[w]; ok {
		cur.Add(cur, n)
		return
	}
	m[w] = new(big.Int).Set(n)
}

// DualPBW is a vector in the dual PBW basis: basis word -> coefficient.
type DualPBW struct {
	wordMap
}

// DualPBWOf builds a dual-PBW element from a map (values copied).
func DualPBWOf(terms map[alphabet.Word]*big.Rat) DualPBW {
	d := DualPBW{}
	for w, c := range terms {
		d.add(w, c)
	}

	return d
}

// Equal reports whether d and e have the same terms.
func (d DualPBW) Equal(e DualPBW) bool { return d.equal(e.wordMap) }
