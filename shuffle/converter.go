// SPDX-License-Identifier: MIT

package shuffle

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/katalvlaran/thetasharp/alphabet"
)

// Converter changes basis between words and dual-PBW basis elements using the
// expansions of an Expander.
type Converter struct {
	exp *Expander
}

// NewConverter binds a converter to exp.
func NewConverter(exp *Expander) *Converter { return &Converter{exp: exp} }

// Expander returns the underlying expander.
func (c *Converter) Expander() *Expander { return c.exp }

// ToDualPBW returns the coordinates of x in the dual-PBW basis.
//
// Implementation:
//   - Stage 1: copy x into a working remainder.
//   - Stage 2: while non-zero, take its lexicographically largest word m with
//     coefficient a, record a at m and subtract a·S_m.
//
// Each step strictly lowers the largest remaining word among the finitely many
// rearrangements of x's words, so the loop terminates.
func (c *Converter) ToDualPBW(x Element) (DualPBW, error) {
	rem := Element{x.clone()}
	out := DualPBW{}
	neg := new(big.Rat)
	for {
		m, a, ok := rem.max()
		if !ok {
			return out, nil
		}
		a = new(big.Rat).Set(a)
		s, err := c.exp.Expand(m)
		if err != nil {
			return DualPBW{}, shuffleErrorf(opToDualPBW, err)
		}
		out.add(m, a)
		neg.Neg(a)
		for w, d := range s.terms {
			rem.add(w, new(big.Rat).Mul(d, neg))
		}
		if _, left := rem.terms[m]; left {
			return DualPBW{}, shuffleErrorf(opToDualPBW, fmt.Errorf("%q: %w", m, ErrNotTriangular))
		}
	}
}

// ToShuffle returns Σ d_w·S_w, the inverse of ToDualPBW.
func (c *Converter) ToShuffle(d DualPBW) (Element, error) {
	out := Element{}
	tmp := new(big.Rat)
	for w, a := range d.terms {
		s, err := c.exp.Expand(w)
		if err != nil {
			return Element{}, shuffleErrorf(opToShuffle, err)
		}
		for u, b := range s.terms {
			out.add(u, tmp.Mul(a, b))
		}
	}

	return out, nil
}

// ToDualPBWAsync precomputes, with up to workers goroutines, the expansion of
// every rearrangement of every word in x's support and then runs ToDualPBW.
// The result equals ToDualPBW(x).
func (c *Converter) ToDualPBWAsync(ctx context.Context, x Element, workers int) (DualPBW, error) {
	if err := c.exp.Precompute(ctx, PermutationClosure(x.Support()), workers); err != nil {
		return DualPBW{}, shuffleErrorf(opToDualPBW, err)
	}

	return c.ToDualPBW(x)
}

// PermutationClosure returns the distinct rearrangements of the given words,
// shortest first. This is the set of words whose expansions ToDualPBW may
// need.
func PermutationClosure(words []alphabet.Word) []alphabet.Word {
	seen := make(map[alphabet.Word]struct{})
	var out []alphabet.Word
	for _, w := range words {
		for _, p := range alphabet.Permutations(w) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	sortByLength(out)

	return out
}

func sortByLength(ws []alphabet.Word) {
	sort.Slice(ws, func(i, j int) bool {
		if ws[i].Len() != ws[j].Len() {
			return ws[i].Len() < ws[j].Len()
		}
		return ws[i] < ws[j]
	})
}
