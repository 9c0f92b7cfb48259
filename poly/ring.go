// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"
)

// Ring is the generator registry of a polynomial ring over ℚ.
// Registration is not synchronized; finish building a ring before sharing it.
type Ring struct {
	names   []string
	weights []int
	byName  map[string]int
}

// NewRing returns an empty ring.
func NewRing() *Ring {
	return &Ring{byName: make(map[string]int)}
}

// AddGenerator registers name with the given weight and returns its ID.
func (r *Ring) AddGenerator(name string, weight int) (int, error) {
	if weight <= 0 {
		return 0, polyErrorf(opAddGenerator, fmt.Errorf("%s weight %d: %w", name, weight, ErrInvalidWeight))
	}
	if _, dup := r.byName[name]; dup {
		return 0, polyErrorf(opAddGenerator, fmt.Errorf("%s: %w", name, ErrDuplicateGenerator))
	}
	id := len(r.names)
	r.names = append(r.names, name)
	r.weights = append(r.weights, weight)
	r.byName[name] = id

	return id, nil
}

// Clone returns an independent copy. Generators added to the clone get IDs
// after the existing ones, so polynomials of r stay valid in the clone.
func (r *Ring) Clone() *Ring {
	c := &Ring{
		names:   append([]string(nil), r.names...),
		weights: append([]int(nil), r.weights...),
		byName:  make(map[string]int, len(r.byName)),
	}
	for k, v := range r.byName {
		c.byName[k] = v
	}

	return c
}

// Len returns the number of generators.
func (r *Ring) Len() int { return len(r.names) }

// Name returns the name of generator id.
func (r *Ring) Name(id int) string { return r.names[id] }

// Weight returns the weight of generator id.
func (r *Ring) Weight(id int) int { return r.weights[id] }

// Lookup finds a generator by name.
func (r *Ring) Lookup(name string) (int, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Gen returns the polynomial consisting of generator id alone.
func (r *Ring) Gen(id int) Poly {
	return Term(big.NewRat(1, 1), Monomial{{Gen: id, Exp: 1}})
}

// WeightedDegree returns Σ exp·weight over the powers of m.
func (r *Ring) WeightedDegree(m Monomial) int {
	d := 0
	for _, p := range m {
		d += p.Exp * r.weights[p.Gen]
	}

	return d
}

// HomogeneousDegree reports the common weighted degree of all terms of p.
// ok is false when p is zero or mixes degrees.
func (r *Ring) HomogeneousDegree(p Poly) (deg int, ok bool) {
	first := true
	for _, t := range p.terms {
		d := r.WeightedDegree(t.mono)
		if first {
			deg, first = d, false
			continue
		}
		if d != deg {
			return 0, false
		}
	}

	return deg, !first
}
