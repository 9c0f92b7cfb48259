// SPDX-License-Identifier: MIT

package poly

import (
	"encoding/binary"
	"sort"
)

// Power is one generator raised to a positive exponent.
type Power struct {
	Gen int // generator ID
	Exp int // exponent, > 0
}

// Monomial is a sparse exponent vector sorted by generator ID with no zero
// exponents. The empty monomial is 1.
type Monomial []Power

// NewMonomial builds a monomial from unsorted powers, merging repeated
// generators and dropping zero exponents.
func NewMonomial(powers ...Power) Monomial {
	acc := make(map[int]int, len(powers))
	for _, p := range powers {
		acc[p.Gen] += p.Exp
	}
	out := make(Monomial, 0, len(acc))
	for g, e := range acc {
		if e != 0 {
			out = append(out, Power{Gen: g, Exp: e})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Gen < out[j].Gen })

	return out
}

// FromExponents pairs gens[i] with exps[i], skipping zero exponents.
// gens must be strictly increasing.
func FromExponents(gens, exps []int) Monomial {
	out := make(Monomial, 0, len(gens))
	for i, g := range gens {
		if exps[i] != 0 {
			out = append(out, Power{Gen: g, Exp: exps[i]})
		}
	}

	return out
}

// Key is a compact, injective encoding of m usable as a map key.
func (m Monomial) Key() string {
	buf := make([]byte, 0, 4*len(m))
	for _, p := range m {
		buf = binary.AppendUvarint(buf, uint64(p.Gen))
		buf = binary.AppendUvarint(buf, uint64(p.Exp))
	}

	return string(buf)
}

// Exponent returns the exponent of gen in m.
func (m Monomial) Exponent(gen int) int {
	i := sort.Search(len(m), func(i int) bool { return m[i].Gen >= gen })
	if i < len(m) && m[i].Gen == gen {
		return m[i].Exp
	}

	return 0
}

// Degree returns the total (unweighted) degree.
func (m Monomial) Degree() int {
	d := 0
	for _, p := range m {
		d += p.Exp
	}

	return d
}

// Mul merges two sorted exponent vectors.
// Complexity: O(len(m)+len(o)).
func (m Monomial) Mul(o Monomial) Monomial {
	out := make(Monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].Gen < o[j].Gen:
			out = append(out, m[i])
			i++
		case m[i].Gen > o[j].Gen:
			out = append(out, o[j])
			j++
		default:
			out = append(out, Power{Gen: m[i].Gen, Exp: m[i].Exp + o[j].Exp})
			i++
			j++
		}
	}
	out = append(out, m[i:]...)

	return append(out, o[j:]...)
}

// Split partitions m into the powers whose generator satisfies pred and the rest.
func (m Monomial) Split(pred func(gen int) bool) (in, out Monomial) {
	for _, p := range m {
		if pred(p.Gen) {
			in = append(in, p)
		} else {
			out = append(out, p)
		}
	}

	return in, out
}

// Equal reports whether m and o are the same monomial.
func (m Monomial) Equal(o Monomial) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if m[i] != o[i] {
			return false
		}
	}

	return true
}
