// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/big"
)

// Rank returns the rank of m.
//
// Implementation:
//   - Stage 1: validate m; zero-sized matrices have rank 0.
//   - Stage 2 (RankExact): scale each row by the lcm of its denominators and
//     run Bareiss elimination on the integer rows.
//   - Stage 2 (RankModular): reduce entries to GF(p) and run Gaussian
//     elimination there.
//
// Complexity: O(r*c*min(r,c)) arithmetic operations.
func Rank(m Matrix, opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return 0, nil
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	o := gatherOptions(opts...)
	if o.method == RankModular {
		r, err := rankModP(d, o.modulus)
		if err != nil {
			return 0, matrixErrorf(opRank, err)
		}
		return r, nil
	}

	return bareissRank(integerRows(d)), nil
}

// Nullity returns cols - rank, the dimension of {x : m·x = 0}.
func Nullity(m Matrix, opts ...Option) (int, error) {
	r, err := Rank(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opNullity, err)
	}

	return m.Cols() - r, nil
}

// LeftNullity returns rows - rank, the dimension of {y : y·m = 0}.
func LeftNullity(m Matrix, opts ...Option) (int, error) {
	r, err := Rank(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opNullity, err)
	}

	return m.Rows() - r, nil
}

// integerRows returns a fresh big.Int copy of d with row i scaled by the lcm
// of its denominators. Scaling rows by non-zero constants preserves rank.
func integerRows(d *Dense) [][]*big.Int {
	out := make([][]*big.Int, d.r)
	l := new(big.Int)
	g := new(big.Int)
	for i := 0; i < d.r; i++ {
		row := d.data[i*d.c : (i+1)*d.c]
		l.SetInt64(1)
		for _, v := range row {
			g.GCD(nil, nil, l, v.Denom())
			l.Mul(l, new(big.Int).Quo(v.Denom(), g))
		}
		out[i] = make([]*big.Int, d.c)
		for j, v := range row {
			x := new(big.Int).Quo(l, v.Denom())
			out[i][j] = x.Mul(x, v.Num())
		}
	}

	return out
}

// bareissRank reduces a in place to fraction-free row echelon form and
// returns the number of pivots.
//
// After k pivots every remaining entry is, up to sign, a (k+1)-minor of the
// input, so the division by the previous pivot is exact.
func bareissRank(a [][]*big.Int) int {
	rows := len(a)
	if rows == 0 {
		return 0
	}
	cols := len(a[0])
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		p := -1
		for i := rank; i < rows; i++ {
			if a[i][col].Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue
		}
		a[rank], a[p] = a[p], a[rank]
		piv := a[rank][col]
		for i := rank + 1; i < rows; i++ {
			lead := a[i][col]
			for j := col + 1; j < cols; j++ {
				t1.Mul(piv, a[i][j])
				t2.Mul(lead, a[rank][j])
				t1.Sub(t1, t2)
				a[i][j].Quo(t1, prev)
			}
			lead.SetInt64(0)
		}
		prev = piv
		rank++
	}

	return rank
}

// rankModP computes the rank of d over GF(p).
func rankModP(d *Dense, p *big.Int) (int, error) {
	a := make([][]*big.Int, d.r)
	for i := 0; i < d.r; i++ {
		a[i] = make([]*big.Int, d.c)
		for j := 0; j < d.c; j++ {
			v := d.data[i*d.c+j]
			inv := new(big.Int).ModInverse(v.Denom(), p)
			if inv == nil {
				return 0, denseErrorf(ctxAt, i, j, fmt.Errorf("%s mod %s: %w", v.RatString(), p, ErrModulusDividesDenominator))
			}
			x := new(big.Int).Mod(v.Num(), p)
			a[i][j] = x.Mul(x, inv).Mod(x, p)
		}
	}

	t := new(big.Int)
	rank := 0
	for col := 0; col < d.c && rank < d.r; col++ {
		piv := -1
		for i := rank; i < d.r; i++ {
			if a[i][col].Sign() != 0 {
				piv = i
				break
			}
		}
		if piv < 0 {
			continue
		}
		a[rank], a[piv] = a[piv], a[rank]
		inv := new(big.Int).ModInverse(a[rank][col], p)
		for i := rank + 1; i < d.r; i++ {
			if a[i][col].Sign() == 0 {
				continue
			}
			f := new(big.Int).Mul(a[i][col], inv)
			f.Mod(f, p)
			for j := col; j < d.c; j++ {
				t.Mul(f, a[rank][j])
				a[i][j].Sub(a[i][j], t).Mod(a[i][j], p)
			}
		}
		rank++
	}

	return rank, nil
}
