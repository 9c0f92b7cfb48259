// SPDX-License-Identifier: MIT

package poly

import (
	"math/big"
)

// term is one monomial with its non-zero coefficient. The coefficient is
// owned by the Poly that holds the term.
type term struct {
	mono Monomial
	coef *big.Rat
}

// TermView is the exported view of one term; Coef is a copy.
type TermView struct {
	Mono Monomial
	Coef *big.Rat
}

// Poly is a sparse polynomial over ℚ. The zero value is the zero polynomial.
type Poly struct {
	terms map[string]term
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly { return Constant(big.NewRat(1, 1)) }

// Constant returns the constant polynomial c.
func Constant(c *big.Rat) Poly { return Term(c, nil) }

// Term returns the single-term polynomial c·m.
func Term(c *big.Rat, m Monomial) Poly {
	p := Poly{}
	p.addTerm(m, c)

	return p
}

// Len returns the number of non-zero terms.
func (p Poly) Len() int { return len(p.terms) }

// IsZero reports whether p has no terms.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Coefficient returns a copy of the coefficient of m (0 if absent).
func (p Poly) Coefficient(m Monomial) *big.Rat {
	if t, ok := p.terms[m.Key()]; ok {
		return new(big.Rat).Set(t.coef)
	}

	return new(big.Rat)
}

// ConstantTerm returns the coefficient of the empty monomial.
func (p Poly) ConstantTerm() *big.Rat { return p.Coefficient(nil) }

// Terms returns the terms in unspecified order with copied coefficients.
// Use Ring.SortedTerms for a deterministic order.
func (p Poly) Terms() []TermView {
	out := make([]TermView, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, TermView{Mono: t.mono, Coef: new(big.Rat).Set(t.coef)})
	}

	return out
}

// Equal reports whether p and q have identical terms.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || t.coef.Cmp(u.coef) != 0 {
			return false
		}
	}

	return true
}

// addTerm adds c·m into p in place, dropping the term if it cancels.
func (p *Poly) addTerm(m Monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	if p.terms == nil {
		p.terms = make(map[string]term)
	}
	k := m.Key()
	if t, ok := p.terms[k]; ok {
		t.coef.Add(t.coef, c)
		if t.coef.Sign() == 0 {
			delete(p.terms, k)
		}
		return
	}
	p.terms[k] = term{mono: m, coef: new(big.Rat).Set(c)}
}

// AddScaled adds c·q into p in place. p must be owned by the caller.
func (p *Poly) AddScaled(q Poly, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	tmp := new(big.Rat)
	for _, t := range q.terms {
		p.addTerm(t.mono, tmp.Mul(t.coef, c))
	}
}

// AddTerm adds c·m into p in place. p must be owned by the caller.
func (p *Poly) AddTerm(c *big.Rat, m Monomial) { p.addTerm(m, c) }

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	out := Poly{}
	for _, t := range p.terms {
		out.addTerm(t.mono, t.coef)
	}

	return out
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	out := p.Clone()
	out.AddScaled(q, big.NewRat(1, 1))

	return out
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	out := p.Clone()
	out.AddScaled(q, big.NewRat(-1, 1))

	return out
}

// Scale returns c·p.
func (p Poly) Scale(c *big.Rat) Poly {
	out := Poly{}
	out.AddScaled(p, c)

	return out
}

// Mul returns p·q.
// Complexity: O(|p|·|q|) monomial merges and rational products.
func (p Poly) Mul(q Poly) Poly {
	out := Poly{}
	tmp := new(big.Rat)
	for _, a := range p.terms {
		for _, b := range q.terms {
			out.addTerm(a.mono.Mul(b.mono), tmp.Mul(a.coef, b.coef))
		}
	}

	return out
}

// Pow returns p^e for e >= 0 by repeated squaring.
func (p Poly) Pow(e int) Poly {
	result := One()
	base := p
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		e >>= 1
		if e > 0 {
			base = base.Mul(base)
		}
	}

	return result
}

// Substitute replaces every generator for which value reports ok by that
// value and leaves the others symbolic.
func (p Poly) Substitute(value func(gen int) (*big.Rat, bool)) Poly {
	out := Poly{}
	c := new(big.Rat)
	pw := new(big.Rat)
	for _, t := range p.terms {
		c.Set(t.coef)
		var rest Monomial
		for _, pp := range t.mono {
			v, ok := value(pp.Gen)
			if !ok {
				rest = append(rest, pp)
				continue
			}
			ratPow(pw, v, pp.Exp)
			c.Mul(c, pw)
		}
		out.addTerm(rest, c)
	}

	return out
}

// ratPow sets z = x^e for e >= 0 and returns z.
func ratPow(z, x *big.Rat, e int) *big.Rat {
	num := new(big.Int).Exp(x.Num(), big.NewInt(int64(e)), nil)
	den := new(big.Int).Exp(x.Denom(), big.NewInt(int64(e)), nil)

	return z.SetFrac(num, den)
}

// CollectBy groups the terms of p by their part over the generators selected
// by outer. It returns, per outer-monomial key, the outer monomial and the
// polynomial formed by the remaining factors.
func (p Poly) CollectBy(outer func(gen int) bool) map[string]Collected {
	out := make(map[string]Collected)
	for _, t := range p.terms {
		o, rest := t.mono.Split(outer)
		k := o.Key()
		c, ok := out[k]
		if !ok {
			c = Collected{Outer: o}
		}
		c.Coef.addTerm(rest, t.coef)
		out[k] = c
	}
	for k, c := range out {
		if c.Coef.IsZero() {
			delete(out, k)
		}
	}

	return out
}

// Collected is one group returned by CollectBy.
type Collected struct {
	Outer Monomial
	Coef  Poly
}

// Content returns the positive rational g such that p/g has coprime integer
// coefficients: gcd of the numerators over lcm of the denominators.
// The zero polynomial has content 0.
func (p Poly) Content() *big.Rat {
	num := new(big.Int)
	den := big.NewInt(1)
	g := new(big.Int)
	for _, t := range p.terms {
		num.GCD(nil, nil, num, new(big.Int).Abs(t.coef.Num()))
		g.GCD(nil, nil, den, t.coef.Denom())
		den.Mul(den, new(big.Int).Quo(t.coef.Denom(), g))
	}
	if num.Sign() == 0 {
		return new(big.Rat)
	}

	return new(big.Rat).SetFrac(num, den)
}

// Primitive returns p divided by its content (p itself when p is zero).
func (p Poly) Primitive() Poly {
	c := p.Content()
	if c.Sign() == 0 {
		return p
	}

	return p.Scale(c.Inv(c))
}

// IsIntegral reports whether every coefficient is an integer.
func (p Poly) IsIntegral() bool {
	for _, t := range p.terms {
		if !t.coef.IsInt() {
			return false
		}
	}

	return true
}
