// SPDX-License-Identifier: MIT

package shuffle_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetasharp/alphabet"
	"github.com/katalvlaran/thetasharp/shuffle"
)

func rat(a, b int64) *big.Rat { return big.NewRat(a, b) }

func elem(pairs ...any) shuffle.Element {
	m := make(map[alphabet.Word]*big.Rat)
	for i := 0; i < len(pairs); i += 2 {
		m[alphabet.Word(pairs[i].(string))] = big.NewRat(int64(pairs[i+1].(int)), 1)
	}

	return shuffle.FromTerms(m)
}

func testWords(t *testing.T) []alphabet.Word {
	t.Helper()
	a, err := alphabet.New(4, 2)
	require.NoError(t, err)

	return a.WordsUpToWeight(4, 1)
}

func TestShuffleWords(t *testing.T) {
	got := shuffle.ShuffleWords("ab", "a")
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got["aab"].Int64())
	assert.Equal(t, int64(1), got["aba"].Int64())

	got = shuffle.ShuffleWords("", "ab")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got["ab"].Int64())

	// |u ш v| counts binomial(|u|+|v|, |u|) interleavings
	total := new(big.Int)
	for _, n := range shuffle.ShuffleWords("abA", "ba") {
		total.Add(total, n)
	}
	assert.Equal(t, int64(10), total.Int64())
}

func TestElement_Arithmetic(t *testing.T) {
	a := shuffle.WordElement("a")
	b := shuffle.WordElement("b")

	assert.True(t, a.Shuffle(b).Equal(elem("ab", 1, "ba", 1)))
	assert.True(t, a.Shuffle(a).Equal(elem("aa", 2)))
	assert.True(t, a.Shuffle(shuffle.One()).Equal(a))
	assert.True(t, a.Shuffle(shuffle.Zero()).IsZero())

	x := elem("ab", 1, "ba", 1).Sub(b.Concat('a'))
	assert.True(t, x.Equal(elem("ba", 1)))
	assert.Equal(t, "1/2*ab", shuffle.WordElement("ab").Scale(rat(1, 2)).String())
	assert.Equal(t, 0, a.Sub(a).Len())
	assert.Equal(t, "0", a.Sub(a).String())
}

func TestExpand_Fixtures(t *testing.T) {
	exp := shuffle.NewExpander()
	cases := []struct {
		word string
		want shuffle.Element
	}{
		{"", shuffle.One()},
		{"a", elem("a", 1)},
		{"ab", elem("ab", 1)},
		{"ba", elem("ab", 1, "ba", 1)},
		{"aa", elem("aa", 1)},
		{"aab", elem("aab", 1)},
		{"aba", elem("aab", 2, "aba", 1)},
		{"Aa", elem("Aa", 1)},
		{"aA", elem("Aa", 1, "aA", 1)},
	}
	for _, tc := range cases {
		got, err := exp.Expand(alphabet.Word(tc.word))
		require.NoError(t, err, tc.word)
		assert.True(t, got.Equal(tc.want), "S_%s = %s", tc.word, got)
	}
}

func TestExpand_Triangular(t *testing.T) {
	exp := shuffle.NewExpander()
	for _, w := range testWords(t) {
		s, err := exp.Expand(w)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Coefficient(w).Cmp(rat(1, 1)), "leading coefficient of S_%s", w)
		for _, u := range s.Support() {
			assert.True(t, u <= w, "S_%s contains larger word %s", w, u)
			assert.Equal(t, len(w), len(u))
		}
	}
}

func TestToDualPBW_Fixture(t *testing.T) {
	conv := shuffle.NewConverter(shuffle.NewExpander())

	d, err := conv.ToDualPBW(shuffle.WordElement("ba"))
	require.NoError(t, err)
	want := shuffle.DualPBWOf(map[alphabet.Word]*big.Rat{"ba": rat(1, 1), "ab": rat(-1, 1)})
	assert.True(t, d.Equal(want), "got %s", d)

	d, err = conv.ToDualPBW(shuffle.Zero())
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestToDualPBW_RoundTrip(t *testing.T) {
	conv := shuffle.NewConverter(shuffle.NewExpander())
	for _, w := range testWords(t) {
		x := shuffle.WordElement(w)
		d, err := conv.ToDualPBW(x)
		require.NoError(t, err)
		back, err := conv.ToShuffle(d)
		require.NoError(t, err)
		assert.True(t, back.Equal(x), "round trip of %s gave %s", w, back)

		// S_w is the basis element dual to w
		s, err := conv.Expander().Expand(w)
		require.NoError(t, err)
		d, err = conv.ToDualPBW(s)
		require.NoError(t, err)
		assert.True(t, d.Equal(shuffle.DualPBWOf(map[alphabet.Word]*big.Rat{w: rat(1, 1)})), "S_%s", w)
	}
}

func TestPrecompute_MatchesSequential(t *testing.T) {
	words := testWords(t)
	store := shuffle.NewMemoryStore()
	par := shuffle.NewExpander(shuffle.WithStore(store))
	require.NoError(t, par.Precompute(context.Background(), shuffle.PermutationClosure(words), 4))
	par.MarkPrecomputed()
	assert.True(t, par.Precomputed())
	assert.Greater(t, store.Len(), 0)

	seq := shuffle.NewExpander()
	for _, w := range words {
		a, err := par.Expand(w)
		require.NoError(t, err)
		b, err := seq.Expand(w)
		require.NoError(t, err)
		assert.True(t, a.Equal(b), w)
	}

	_, err := par.Expand("aaaaaaa")
	assert.ErrorIs(t, err, shuffle.ErrNotPrecomputed)
}

func TestToDualPBWAsync_MatchesSequential(t *testing.T) {
	x := elem("ba", 3, "aab", -2, "abA", 1, "Aba", 5)
	seq, err := shuffle.NewConverter(shuffle.NewExpander()).ToDualPBW(x)
	require.NoError(t, err)

	par, err := shuffle.NewConverter(shuffle.NewExpander()).ToDualPBWAsync(context.Background(), x, 3)
	require.NoError(t, err)
	assert.True(t, seq.Equal(par))
}

var errBoom = errors.New("disk full")

type failingStore struct{ *shuffle.MemoryStore }

func (failingStore) Save(alphabet.Word, shuffle.Element) error { return errBoom }

func TestPrecompute_PropagatesWorkerError(t *testing.T) {
	exp := shuffle.NewExpander(shuffle.WithStore(failingStore{shuffle.NewMemoryStore()}))
	err := exp.Precompute(context.Background(), testWords(t), 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}

func TestPrecompute_Errors(t *testing.T) {
	exp := shuffle.NewExpander()
	assert.ErrorIs(t, exp.Precompute(context.Background(), nil, 0), shuffle.ErrInvalidWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, exp.Precompute(ctx, testWords(t), 2), context.Canceled)
}

func TestPermutationClosure(t *testing.T) {
	got := shuffle.PermutationClosure([]alphabet.Word{"ab", "ba", "a"})
	assert.Equal(t, []alphabet.Word{"a", "ab", "ba"}, got)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { shuffle.WithStore(nil) })
	assert.Panics(t, func() { shuffle.WithLogger(nil) })
}

func TestElement_JSON(t *testing.T) {
	x := elem("ab", 1, "ba", -3).Add(shuffle.Term(rat(1, 2), ""))
	raw, err := x.MarshalJSON()
	require.NoError(t, err)

	var y shuffle.Element
	require.NoError(t, y.UnmarshalJSON(raw))
	assert.True(t, x.Equal(y))
	assert.Error(t, y.UnmarshalJSON([]byte(`{"a":"x"}`)))
}
