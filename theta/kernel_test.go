// SPDX-License-Identifier: MIT

package theta_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetasharp/matrix"
	"github.com/katalvlaran/thetasharp/shuffle"
	"github.com/katalvlaran/thetasharp/theta"
)

func newRand(seed int64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func upperBound(t *testing.T, D, v int, opts ...theta.Option) int {
	t.Helper()
	n, err := theta.UpperBoundOnDimensionOfKernel(context.Background(), D, v, opts...)
	require.NoError(t, err)

	return n
}

// In degree 2 with one index and D=2 the only relation is
// Li2 = 1/2·log·Li1.
func TestMatrix_DegreeTwoFixture(t *testing.T) {
	e := newEvaluator(t, 2, 1)

	s, err := e.Shape(2)
	require.NoError(t, err)
	labels := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		labels[i] = theta.RowLabel(r)
	}
	assert.Equal(t, []string{"log^2", "log*Li1", "Li1^2", "Li2"}, labels)
	require.Len(t, s.Cols, 3)

	m, err := e.Matrix(2, theta.WithRandomEvaluation(theta.FixedAssignment(e.Graded())))
	require.NoError(t, err)
	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n[0, 1, 0]\n", m.String())

	rank, err := matrix.Rank(m)
	require.NoError(t, err)
	assert.Equal(t, 3, rank)

	exact, err := e.ExactKernelDimension(2)
	require.NoError(t, err)
	assert.Equal(t, 1, exact)

	assert.Equal(t, 1, upperBound(t, 2, 2, theta.WithIndices(1), theta.WithFixedTestIntegers()))
	assert.Equal(t, 1, upperBound(t, 2, 2, theta.WithIndices(1), theta.WithSeed(11)))
}

func TestSymbolicMatrix_Entries(t *testing.T) {
	e := newEvaluator(t, 2, 1)
	s, entries, err := e.SymbolicMatrix(2)
	require.NoError(t, err)
	require.Len(t, entries, len(s.Rows))

	assert.Equal(t, "Sa^2", e.Format(entries[0][0]))
	assert.Equal(t, "1/2*Sa^2", e.Format(entries[3][1]))
	assert.True(t, entries[3][0].IsZero())
}

func TestMatrix_DegenerateDegrees(t *testing.T) {
	e := newEvaluator(t, 3, 1)
	require.NoError(t, e.SetAssignment(theta.FixedAssignment(e.Graded())))

	m, err := e.Matrix(0)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 1, m.Cols())
	one, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1", one.RatString())

	m, err = e.Matrix(-1)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())

	assert.Equal(t, 0, upperBound(t, 3, 0, theta.WithFixedTestIntegers()))
	assert.Equal(t, 0, upperBound(t, 3, -2, theta.WithFixedTestIntegers()))
}

func TestMatrix_RankNullityAndColumnGrowth(t *testing.T) {
	e := newEvaluator(t, 4, 1)
	require.NoError(t, e.SetAssignment(theta.FixedAssignment(e.Graded())))

	prevCols := 0
	for v := 1; v <= 6; v++ {
		m, err := e.Matrix(v)
		require.NoError(t, err)
		rank, err := matrix.Rank(m)
		require.NoError(t, err)
		nullity, err := matrix.Nullity(m)
		require.NoError(t, err)
		left, err := matrix.LeftNullity(m)
		require.NoError(t, err)

		assert.Equal(t, m.Cols(), rank+nullity, "v=%d", v)
		assert.Equal(t, m.Rows(), rank+left, "v=%d", v)
		assert.GreaterOrEqual(t, m.Cols(), prevCols, "v=%d", v)
		prevCols = m.Cols()
	}
}

// With the reduction on, odd D is answered on D-1, so the first comparison
// guards the routing itself; the second checks that answer against an
// independent random point on D-1.
func TestUpperBound_OddWeightReduction(t *testing.T) {
	for _, D := range []int{3, 5, 7} {
		for v := 1; v <= 6; v++ {
			reduced := upperBound(t, D, v, theta.WithFixedTestIntegers())
			assert.Equal(t, upperBound(t, D-1, v, theta.WithFixedTestIntegers()), reduced, "D=%d v=%d", D, v)
			assert.Equal(t, upperBound(t, D-1, v, theta.WithSeed(int64(10*D+v))), reduced, "random D=%d v=%d", D, v)
		}
	}
}

// Without the reduction Li_D is still the only row reaching the phisigma{D}
// columns up to degree D+1, so nothing changes there.
func TestUpperBound_UnreducedAgreesBelowDPlusTwo(t *testing.T) {
	for _, D := range []int{3, 5} {
		for v := 1; v <= D+1; v++ {
			assert.Equal(t,
				upperBound(t, D-1, v, theta.WithFixedTestIntegers()),
				upperBound(t, D, v, theta.WithFixedTestIntegers(), theta.WithOddWeightReduction(false)),
				"D=%d v=%d", D, v)
		}
	}
}

func TestMatrix_ContentScalingKeepsRank(t *testing.T) {
	e := newEvaluator(t, 4, 2)
	a := theta.FixedAssignment(e.Graded())

	scaled, err := e.Matrix(3, theta.WithRandomEvaluation(a))
	require.NoError(t, err)
	raw, err := e.Matrix(3, theta.WithRandomEvaluation(a), theta.WithContentScaling(false))
	require.NoError(t, err)

	r1, err := matrix.Rank(scaled)
	require.NoError(t, err)
	r2, err := matrix.Rank(raw)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestUpperBound_NeverBelowExact(t *testing.T) {
	for _, tc := range []struct{ D, n, v int }{
		{3, 1, 3},
		{4, 1, 4},
		{3, 2, 2},
		{3, 2, 3},
	} {
		e := newEvaluator(t, tc.D, tc.n)
		exact, err := e.ExactKernelDimension(tc.v)
		require.NoError(t, err)

		for _, opt := range []theta.Option{theta.WithFixedTestIntegers(), theta.WithSeed(5), theta.WithRandomBound(3)} {
			ub, err := e.UpperBound(context.Background(), tc.v, opt)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, ub, exact, "D=%d n=%d v=%d", tc.D, tc.n, tc.v)
		}
	}
}

func TestKernelBound_AssignmentReuse(t *testing.T) {
	ctx := context.Background()
	e := newEvaluator(t, 3, 1)

	first, err := e.KernelBound(ctx, 2, theta.WithSeed(1))
	require.NoError(t, err)
	assert.False(t, first.Fixed)
	assert.Equal(t, first.AssignmentID, e.Assignment().ID())

	kept, err := e.KernelBound(ctx, 3, theta.WithClearCache(false))
	require.NoError(t, err)
	assert.Equal(t, first.AssignmentID, kept.AssignmentID)

	fresh, err := e.KernelBound(ctx, 3, theta.WithSeed(1))
	require.NoError(t, err)
	assert.NotEqual(t, first.AssignmentID, fresh.AssignmentID)

	a := theta.FixedAssignment(e.Graded())
	pinned, err := e.KernelBound(ctx, 3, theta.WithAssignment(a))
	require.NoError(t, err)
	assert.Equal(t, a.ID(), pinned.AssignmentID)
	assert.True(t, pinned.Fixed)
}

func TestComputeBound_ParallelAndModular(t *testing.T) {
	ctx := context.Background()
	serial, err := theta.ComputeBound(ctx, 4, 3, theta.WithIndices(2), theta.WithFixedTestIntegers())
	require.NoError(t, err)
	assert.Equal(t, 4, serial.WeightBound)
	assert.Equal(t, serial.Rows, serial.Rank+serial.Nullity)

	store := shuffle.NewMemoryStore()
	parallel, err := theta.ComputeBound(ctx, 4, 3,
		theta.WithIndices(2), theta.WithFixedTestIntegers(), theta.WithWorkers(4), theta.WithStore(store))
	require.NoError(t, err)
	assert.Equal(t, serial.Nullity, parallel.Nullity)
	assert.Equal(t, serial.Rank, parallel.Rank)
	assert.Positive(t, store.Len())

	modular, err := theta.ComputeBound(ctx, 4, 3,
		theta.WithIndices(2), theta.WithFixedTestIntegers(), theta.WithRankMethod(matrix.RankModular))
	require.NoError(t, err)
	assert.Equal(t, serial.Nullity, modular.Nullity)

	// odd D is reported after reduction
	reduced, err := theta.ComputeBound(ctx, 5, 2, theta.WithFixedTestIntegers())
	require.NoError(t, err)
	assert.Equal(t, 4, reduced.WeightBound)
}

func TestComputeBound_Errors(t *testing.T) {
	_, err := theta.ComputeBound(context.Background(), 0, 2)
	require.ErrorIs(t, err, theta.ErrInvalidWeightBound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = theta.ComputeBound(ctx, 2, 2, theta.WithFixedTestIntegers())
	require.ErrorIs(t, err, context.Canceled)
}
