// SPDX-License-Identifier: MIT

package graded

import (
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/katalvlaran/thetasharp/alphabet"
	"github.com/katalvlaran/thetasharp/poly"
	"github.com/katalvlaran/thetasharp/shuffle"
)

// GeneratorPrefix starts every Lyndon generator name.
const GeneratorPrefix = "S"

// GeneratorName returns the ring name of the generator of Lyndon word w.
func GeneratorName(w alphabet.Word) string { return GeneratorPrefix + string(w) }

// Ring is the polynomial ring on Lyndon words of weight <= D.
// Safe for concurrent use.
type Ring struct {
	alpha *alphabet.Alphabet
	ring  *poly.Ring
	words []alphabet.Word

	mu    sync.Mutex
	basis map[alphabet.Word]poly.Poly
}

// New registers one generator per Lyndon word of weight <= alpha.WeightBound().
func New(alpha *alphabet.Alphabet) (*Ring, error) {
	words := alpha.LyndonWordsUpTo(alpha.WeightBound())
	sort.SliceStable(words, func(i, j int) bool {
		wi, wj := alpha.WordWeight(words[i]), alpha.WordWeight(words[j])
		if wi != wj {
			return wi < wj
		}
		return words[i] < words[j]
	})

	r := &Ring{
		alpha: alpha,
		ring:  poly.NewRing(),
		words: words,
		basis: make(map[alphabet.Word]poly.Poly),
	}
	for _, w := range words {
		if _, err := r.ring.AddGenerator(GeneratorName(w), alpha.WordWeight(w)); err != nil {
			return nil, gradedErrorf(opNew, err)
		}
	}

	return r, nil
}

// Alphabet returns the underlying alphabet.
func (r *Ring) Alphabet() *alphabet.Alphabet { return r.alpha }

// Poly returns the polynomial ring. Callers may Clone it to add generators.
func (r *Ring) Poly() *poly.Ring { return r.ring }

// Words returns the Lyndon words in generator order.
func (r *Ring) Words() []alphabet.Word { return append([]alphabet.Word(nil), r.words...) }

// Generator returns the generator ID of Lyndon word w.
func (r *Ring) Generator(w alphabet.Word) (int, bool) {
	return r.ring.Lookup(GeneratorName(w))
}

// Basis returns the image of dual-PBW basis word w: ∏ S_l^k / k! over its
// Lyndon factorization. The empty word maps to 1. Results are memoized.
func (r *Ring) Basis(w alphabet.Word) (poly.Poly, error) {
	r.mu.Lock()
	p, ok := r.basis[w]
	r.mu.Unlock()
	if ok {
		return p, nil
	}

	factors := alphabet.Factorize(w)
	powers := make([]poly.Power, 0, len(factors))
	denom := big.NewInt(1)
	run := 0
	for i, f := range factors {
		id, ok := r.Generator(f)
		if !ok {
			return poly.Poly{}, fmt.Errorf("%q in %q: %w", f, w, ErrUnknownGenerator)
		}
		powers = append(powers, poly.Power{Gen: id, Exp: 1})
		if i > 0 && factors[i-1] == f {
			run++
		} else {
			run = 1
		}
		denom.Mul(denom, big.NewInt(int64(run)))
	}
	p = poly.Term(new(big.Rat).SetFrac(big.NewInt(1), denom), poly.NewMonomial(powers...))

	r.mu.Lock()
	r.basis[w] = p
	r.mu.Unlock()

	return p, nil
}

// FromDualPBW maps Σ c_w·w to Σ c_w·Basis(w).
func (r *Ring) FromDualPBW(d shuffle.DualPBW) (poly.Poly, error) {
	out := poly.Zero()
	for _, t := range d.Terms() {
		b, err := r.Basis(t.Word)
		if err != nil {
			return poly.Poly{}, gradedErrorf(opFromDualPBW, err)
		}
		out.AddScaled(b, t.Coef)
	}

	return out, nil
}

// FromShuffle converts x to the dual-PBW basis with conv and applies
// FromDualPBW.
func (r *Ring) FromShuffle(x shuffle.Element, conv *shuffle.Converter) (poly.Poly, error) {
	d, err := conv.ToDualPBW(x)
	if err != nil {
		return poly.Poly{}, gradedErrorf(opFromShuffle, err)
	}

	return r.FromDualPBW(d)
}

// Format renders p with generator names.
func (r *Ring) Format(p poly.Poly) string { return r.ring.Format(p) }
