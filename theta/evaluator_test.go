// SPDX-License-Identifier: MIT

package theta_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetasharp/alphabet"
	"github.com/katalvlaran/thetasharp/theta"
)

func newEvaluator(t *testing.T, D, n int, opts ...theta.Option) *theta.Evaluator {
	t.Helper()
	e, err := theta.New(D, n, opts...)
	require.NoError(t, err)

	return e
}

func TestImages_Fixture(t *testing.T) {
	e := newEvaluator(t, 2, 1)

	log, err := e.Log()
	require.NoError(t, err)
	assert.Equal(t, "Sa*phi0t0", e.Format(log))

	li1, err := e.Li(1)
	require.NoError(t, err)
	assert.Equal(t, "Sa*phi1t0", e.Format(li1))

	li2, err := e.Li(2)
	require.NoError(t, err)
	assert.Equal(t, "1/2*Sa^2*phi0t0*phi1t0", e.Format(li2))
}

func TestLi_OddFamily(t *testing.T) {
	e := newEvaluator(t, 3, 1)
	li3, err := e.Li(3)
	require.NoError(t, err)
	assert.Equal(t, "1/6*Sa^3*phi0t0^2*phi1t0 + SA*phisigma3", e.Format(li3))
}

func TestImages_Homogeneous(t *testing.T) {
	e := newEvaluator(t, 5, 2)

	log, err := e.Log()
	require.NoError(t, err)
	d, ok := e.PhiDegree(log)
	require.True(t, ok)
	assert.Equal(t, 1, d)

	for n := 1; n <= 5; n++ {
		li, err := e.Li(n)
		require.NoError(t, err)
		d, ok := e.PhiDegree(li)
		require.True(t, ok, "Li%d is not homogeneous", n)
		assert.Equal(t, n, d)

		// total weight of every term is 2n: n from Φ and n from the Lyndon part
		deg, ok := e.Ring().HomogeneousDegree(li)
		require.True(t, ok)
		assert.Equal(t, 2*n, deg)
	}
}

func TestImages_Errors(t *testing.T) {
	_, err := theta.New(0, 1)
	require.ErrorIs(t, err, theta.ErrInvalidWeightBound)
	_, err = theta.New(3, 0)
	require.ErrorIs(t, err, alphabet.ErrInvalidIndexCount)

	e := newEvaluator(t, 4, 1)
	_, err = e.Li(0)
	require.ErrorIs(t, err, theta.ErrDegreeOutOfRange)
	_, err = e.Li(5)
	require.ErrorIs(t, err, theta.ErrDegreeOutOfRange)

	_, err = e.Log(theta.WithRandomEvaluation(nil))
	require.ErrorIs(t, err, theta.ErrInvalidInvocation)

	short := theta.FixedAssignment(newEvaluator(t, 2, 1).Graded())
	_, err = e.Li(2, theta.WithRandomEvaluation(short))
	require.ErrorIs(t, err, theta.ErrInvalidInvocation)

	_, err = e.Matrix(2)
	require.ErrorIs(t, err, theta.ErrInvalidInvocation)
}

func TestImages_Evaluated(t *testing.T) {
	e := newEvaluator(t, 2, 1)
	fixed := theta.FixedAssignment(e.Graded())

	raw, err := e.Li(1, theta.WithRandomEvaluation(fixed), theta.WithContentScaling(false))
	require.NoError(t, err)
	assert.Equal(t, "2*phi1t0", e.Format(raw))

	scaled, err := e.Li(1, theta.WithRandomEvaluation(fixed))
	require.NoError(t, err)
	assert.Equal(t, "phi1t0", e.Format(scaled))

	li2, err := e.Li(2, theta.WithRandomEvaluation(fixed))
	require.NoError(t, err)
	for _, term := range li2.Terms() {
		for _, p := range term.Mono {
			assert.True(t, e.IsPhi(p.Gen), "symbol %s left after evaluation", e.Ring().Name(p.Gen))
		}
	}
}

func TestImages_CachesAreIndependent(t *testing.T) {
	e := newEvaluator(t, 3, 2)
	sym, err := e.Li(2)
	require.NoError(t, err)

	a1 := theta.FixedAssignment(e.Graded())
	_, err = e.Li(2, theta.WithRandomEvaluation(a1))
	require.NoError(t, err)
	assert.Equal(t, a1.ID(), e.Assignment().ID())

	a2 := theta.RandomAssignment(e.Graded(), newRand(7), 1000)
	_, err = e.Li(2, theta.WithRandomEvaluation(a2))
	require.NoError(t, err)
	assert.Equal(t, a2.ID(), e.Assignment().ID())

	again, err := e.Li(2)
	require.NoError(t, err)
	assert.True(t, sym.Equal(again))

	e.ResetEvaluated()
	assert.Nil(t, e.Assignment())
}

func TestAssignment(t *testing.T) {
	e := newEvaluator(t, 4, 1)
	small := newEvaluator(t, 3, 1)

	fixed := theta.FixedAssignment(e.Graded())
	require.Equal(t, e.Graded().Poly().Len(), fixed.Len())
	assert.True(t, fixed.Fixed())
	want := []int64{2, 3, 5, 7, 11}
	for k := 0; k < fixed.Len() && k < len(want); k++ {
		v, ok := fixed.Value(k)
		require.True(t, ok)
		assert.Equal(t, want[k], v.Num().Int64())
	}
	_, ok := fixed.Value(fixed.Len())
	assert.False(t, ok)

	// generator lists of smaller bounds are prefixes
	sw := small.Graded().Words()
	assert.Equal(t, sw, e.Graded().Words()[:len(sw)])

	r1 := theta.RandomAssignment(e.Graded(), newRand(3), 10)
	r2 := theta.RandomAssignment(small.Graded(), newRand(3), 10)
	for k := 0; k < r2.Len(); k++ {
		v1, _ := r1.Value(k)
		v2, _ := r2.Value(k)
		assert.Equal(t, 0, v1.Cmp(v2))
		assert.True(t, v1.Sign() > 0 && v1.Num().Int64() <= 10)
	}
	assert.NotEqual(t, r1.ID(), r2.ID())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { theta.WithRand(nil) })
	assert.Panics(t, func() { theta.WithRandomBound(0) })
	assert.Panics(t, func() { theta.WithIndices(0) })
	assert.Panics(t, func() { theta.WithWorkers(-1) })
	assert.Panics(t, func() { theta.WithStore(nil) })
	assert.Panics(t, func() { theta.WithLogger(nil) })
	assert.Panics(t, func() { theta.WithAssignment(nil) })
}
