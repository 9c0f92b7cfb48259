// SPDX-License-Identifier: MIT

package poly

import (
	"sort"
	"strconv"
	"strings"
)

// CompareMonomials orders monomials by weighted degree-reverse-lexicographic
// order: higher weighted degree first; on ties the monomial with the smaller
// exponent in the highest-ID generator where they differ is larger.
// Returns -1, 0 or +1.
func (r *Ring) CompareMonomials(a, b Monomial) int {
	da, db := r.WeightedDegree(a), r.WeightedDegree(b)
	if da != db {
		if da < db {
			return -1
		}
		return 1
	}
	i, j := len(a)-1, len(b)-1
	for i >= 0 || j >= 0 {
		ga, gb := -1, -1
		if i >= 0 {
			ga = a[i].Gen
		}
		if j >= 0 {
			gb = b[j].Gen
		}
		switch {
		case ga > gb:
			// a has a positive exponent where b has none
			return -1
		case gb > ga:
			return 1
		case a[i].Exp != b[j].Exp:
			if a[i].Exp < b[j].Exp {
				return 1
			}
			return -1
		}
		i--
		j--
	}

	return 0
}

// SortedTerms returns the terms of p from largest to smallest monomial.
func (r *Ring) SortedTerms(p Poly) []TermView {
	ts := p.Terms()
	sort.Slice(ts, func(i, j int) bool { return r.CompareMonomials(ts[i].Mono, ts[j].Mono) > 0 })

	return ts
}

// FormatMonomial renders m as name^exp factors joined by '*', or "1".
func (r *Ring) FormatMonomial(m Monomial) string {
	if len(m) == 0 {
		return "1"
	}
	parts := make([]string, len(m))
	for i, p := range m {
		parts[i] = r.names[p.Gen]
		if p.Exp > 1 {
			parts[i] += "^" + strconv.Itoa(p.Exp)
		}
	}

	return strings.Join(parts, "*")
}

// Format renders p with terms in descending term order, e.g.
// "Sa*Sb - Sab" or "1/2*Sa^2*phi0t0".
func (r *Ring) Format(p Poly) string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	for i, t := range r.SortedTerms(p) {
		c := t.Coef
		neg := c.Sign() < 0
		if neg {
			c.Neg(c)
		}
		switch {
		case i == 0 && neg:
			b.WriteString("-")
		case i > 0 && neg:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		one := c.IsInt() && c.Num().IsInt64() && c.Num().Int64() == 1
		switch {
		case len(t.Mono) == 0:
			b.WriteString(c.RatString())
		case one:
			b.WriteString(r.FormatMonomial(t.Mono))
		default:
			b.WriteString(c.RatString())
			b.WriteString("*")
			b.WriteString(r.FormatMonomial(t.Mono))
		}
	}

	return b.String()
}
