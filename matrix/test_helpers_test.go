// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/thetasharp/matrix"
)

// hide wraps any Matrix to hide its concrete type and force the generic paths.
type hide struct{ matrix.Matrix }

// mustInts builds a Dense from integer rows or fails the test.
func mustInts(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.FromInts(rows)
	if err != nil {
		tb.Fatalf("FromInts: %v", err)
	}

	return m
}

// randomRational fills an r×c matrix with small rationals, about a third of
// them zero, from a seeded source.
func randomRational(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Intn(3) == 0 {
				continue
			}
			v := big.NewRat(int64(rng.Intn(19)-9), int64(rng.Intn(4)+1))
			if err := m.Set(i, j, v); err != nil {
				tb.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// lowRank returns an r×c integer matrix of rank at most k as a product of
// random r×k and k×c factors.
func lowRank(tb testing.TB, r, c, k int, seed int64) *matrix.Dense {
	tb.Helper()
	a := randomRational(tb, r, k, seed)
	b := randomRational(tb, k, c, seed+1)
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense: %v", err)
	}
	tmp := new(big.Rat)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum := new(big.Rat)
			for l := 0; l < k; l++ {
				x, _ := a.At(i, l)
				y, _ := b.At(l, j)
				sum.Add(sum, tmp.Mul(x, y))
			}
			if err := m.Set(i, j, sum); err != nil {
				tb.Fatalf("Set: %v", err)
			}
		}
	}

	return m
}

// transpose returns mᵀ.
func transpose(tb testing.TB, m matrix.Matrix) *matrix.Dense {
	tb.Helper()
	out, err := matrix.NewDense(m.Cols(), m.Rows())
	if err != nil {
		tb.Fatalf("NewDense: %v", err)
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, _ := m.At(i, j)
			if err := out.Set(j, i, v); err != nil {
				tb.Fatalf("Set: %v", err)
			}
		}
	}

	return out
}

// referenceRank runs textbook Gaussian elimination over big.Rat.
func referenceRank(m matrix.Matrix) int {
	r, c := m.Rows(), m.Cols()
	a := make([][]*big.Rat, r)
	for i := range a {
		a[i] = make([]*big.Rat, c)
		for j := range a[i] {
			a[i][j], _ = m.At(i, j)
		}
	}
	rank := 0
	tmp := new(big.Rat)
	for col := 0; col < c && rank < r; col++ {
		p := -1
		for i := rank; i < r; i++ {
			if a[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[rank], a[p] = a[p], a[rank]
		for i := rank + 1; i < r; i++ {
			f := new(big.Rat).Quo(a[i][col], a[rank][col])
			for j := col; j < c; j++ {
				a[i][j].Sub(a[i][j], tmp.Mul(f, a[rank][j]))
			}
		}
		rank++
	}

	return rank
}
