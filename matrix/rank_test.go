// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetasharp/matrix"
)

func TestRank_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want int
	}{
		{"identity", [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"dependent rows", [][]int64{{1, 2, 3}, {2, 4, 6}, {1, 1, 1}}, 2},
		{"zero", [][]int64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]int64{{0, 1, 2, 3}, {0, 2, 4, 7}}, 2},
		{"tall", [][]int64{{1}, {2}, {3}}, 1},
		{"needs swap", [][]int64{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}, 3},
		{"skipped column", [][]int64{{1, 1, 5}, {1, 1, 7}, {2, 2, 12}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := mustInts(t, tc.rows)
			r, err := matrix.Rank(m)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)

			r, err = matrix.Rank(hide{m}, matrix.WithRankMethod(matrix.RankModular))
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRank_Rational(t *testing.T) {
	// second row is 2/3 of the first
	m, err := matrix.FromRows([][]*big.Rat{
		{big.NewRat(1, 2), big.NewRat(3, 4), big.NewRat(-1, 5)},
		{big.NewRat(1, 3), big.NewRat(1, 2), big.NewRat(-2, 15)},
	})
	require.NoError(t, err)

	r, err := matrix.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	// Rank must not mutate its input
	v, _ := m.At(1, 2)
	assert.Equal(t, "-2/15", v.RatString())
}

func TestRank_MatchesReference(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		shape := [][2]int{{5, 7}, {8, 4}, {6, 6}}[seed%3]
		for _, m := range []*matrix.Dense{
			randomRational(t, shape[0], shape[1], seed),
			lowRank(t, shape[0], shape[1], 2, seed),
		} {
			r, err := matrix.Rank(m)
			require.NoError(t, err)
			assert.Equal(t, referenceRank(m), r, "seed %d\n%s", seed, m)
		}
	}
}

func TestRank_TransposeInvariant(t *testing.T) {
	m := lowRank(t, 6, 9, 3, 99)
	mt := transpose(t, m)

	r, err := matrix.Rank(m)
	require.NoError(t, err)
	rt, err := matrix.Rank(mt)
	require.NoError(t, err)
	assert.Equal(t, r, rt)
	assert.LessOrEqual(t, r, 3)
}

func TestNullity_RankNullity(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 4}, {3, 0}, {4, 7}, {7, 4}} {
		m := randomRational(t, shape[0], shape[1], int64(shape[0]*10+shape[1]))
		r, err := matrix.Rank(m)
		require.NoError(t, err)
		n, err := matrix.Nullity(m)
		require.NoError(t, err)
		ln, err := matrix.LeftNullity(m)
		require.NoError(t, err)

		assert.Equal(t, m.Cols(), r+n, "%v", shape)
		assert.Equal(t, m.Rows(), r+ln, "%v", shape)
	}
}

func TestRank_ModularIsLowerBound(t *testing.T) {
	// 7 divides the determinant 7, so rank mod 7 drops
	m := mustInts(t, [][]int64{{1, 2}, {3, 13}})
	exact, err := matrix.Rank(m)
	require.NoError(t, err)
	mod, err := matrix.Rank(m, matrix.WithModulus(big.NewInt(7)))
	require.NoError(t, err)
	assert.Equal(t, 2, exact)
	assert.Equal(t, 1, mod)

	half, err := matrix.FromRows([][]*big.Rat{{big.NewRat(1, 7)}})
	require.NoError(t, err)
	_, err = matrix.Rank(half, matrix.WithModulus(big.NewInt(7)))
	require.ErrorIs(t, err, matrix.ErrModulusDividesDenominator)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { matrix.WithModulus(big.NewInt(8)) })
	assert.Panics(t, func() { matrix.WithModulus(nil) })
	assert.Panics(t, func() { matrix.WithRankMethod(matrix.RankMethod(9)) })
	assert.Equal(t, "modular", fmt.Sprint(matrix.RankModular))
}
