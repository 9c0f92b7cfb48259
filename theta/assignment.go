// SPDX-License-Identifier: MIT

package theta

import (
	"math/big"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/thetasharp/graded"
)

// Assignment maps every Lyndon generator of a graded ring to a positive
// integer. Generator k of the ring for weight bound D-1 is generator k of the
// ring for D, so an assignment built for D also serves every smaller bound.
// Assignments are immutable.
type Assignment struct {
	id     uuid.UUID
	fixed  bool
	values []*big.Rat
}

// FixedAssignment gives generator k the (k+1)-th prime: 2, 3, 5, 7, ….
func FixedAssignment(r *graded.Ring) *Assignment {
	n := r.Poly().Len()
	values := make([]*big.Rat, n)
	p := int64(1)
	for k := 0; k < n; k++ {
		p = nextPrime(p)
		values[k] = new(big.Rat).SetInt64(p)
	}

	return &Assignment{id: uuid.New(), fixed: true, values: values}
}

// RandomAssignment draws one uniform integer in [1, bound] per generator, in
// generator order.
func RandomAssignment(r *graded.Ring, rng *rand.Rand, bound int64) *Assignment {
	n := r.Poly().Len()
	values := make([]*big.Rat, n)
	for k := range values {
		values[k] = new(big.Rat).SetInt64(rng.Int63n(bound) + 1)
	}

	return &Assignment{id: uuid.New(), values: values}
}

// ID identifies this draw; evaluated-image caches are keyed on it.
func (a *Assignment) ID() uuid.UUID { return a.id }

// Fixed reports whether a came from FixedAssignment.
func (a *Assignment) Fixed() bool { return a.fixed }

// Len returns the number of generators covered.
func (a *Assignment) Len() int { return len(a.values) }

// Value returns a copy of the value of generator gen.
func (a *Assignment) Value(gen int) (*big.Rat, bool) {
	if gen < 0 || gen >= len(a.values) {
		return nil, false
	}

	return new(big.Rat).Set(a.values[gen]), true
}

// nextPrime returns the smallest prime > n.
func nextPrime(n int64) int64 {
	for c := n + 1; ; c++ {
		if c >= 2 && big.NewInt(c).ProbablyPrime(0) {
			return c
		}
	}
}
