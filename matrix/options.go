// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for rank computations.
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors that panic on nonsensical values.
package matrix

import "math/big"

// RankMethod selects the elimination kernel used by Rank.
type RankMethod int

const (
	// RankExact runs fraction-free elimination over the integers.
	RankExact RankMethod = iota

	// RankModular eliminates over GF(p) for a prime p. The result never
	// exceeds the exact rank and equals it unless p divides every maximal
	// non-zero minor.
	RankModular
)

// String returns "exact" or "modular".
func (m RankMethod) String() string {
	switch m {
	case RankExact:
		return "exact"
	case RankModular:
		return "modular"
	default:
		return "unknown"
	}
}

// DefaultModulus is the Mersenne prime 2^61 - 1.
var DefaultModulus = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))

const (
	panicModulusInvalid = "matrix: WithModulus: modulus must be a prime >= 2"
	panicMethodInvalid  = "matrix: WithRankMethod: unknown method"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	method  RankMethod // RankExact
	modulus *big.Int   // DefaultModulus
}

// WithRankMethod selects the elimination kernel.
func WithRankMethod(m RankMethod) Option {
	if m != RankExact && m != RankModular {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithModulus selects RankModular with prime p.
// Panics when p is not a probable prime.
func WithModulus(p *big.Int) Option {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		panic(panicModulusInvalid)
	}
	q := new(big.Int).Set(p)

	return func(o *Options) {
		o.method = RankModular
		o.modulus = q
	}
}

func gatherOptions(opts ...Option) Options {
	o := Options{method: RankExact, modulus: DefaultModulus}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
