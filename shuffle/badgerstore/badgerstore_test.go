// SPDX-License-Identifier: MIT

package badgerstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thetasharp/alphabet"
	"github.com/katalvlaran/thetasharp/shuffle"
	"github.com/katalvlaran/thetasharp/shuffle/badgerstore"
)

func TestStore_LoadSave(t *testing.T) {
	s, err := badgerstore.Open(badgerstore.InMemoryConfig())
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Load("ab")
	require.NoError(t, err)
	assert.False(t, ok)

	x := shuffle.WordElement("ab").Add(shuffle.WordElement("ba"))
	require.NoError(t, s.Save("ba", x))
	got, ok, err := s.Load("ba")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Equal(x))

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStore_PersistsAcrossOpen(t *testing.T) {
	dir := t.TempDir()
	a, err := alphabet.New(4, 2)
	require.NoError(t, err)
	words := a.WordsOfWeight(3, 0)

	s, err := badgerstore.Open(badgerstore.DefaultConfig(dir))
	require.NoError(t, err)
	exp := shuffle.NewExpander(shuffle.WithStore(s))
	require.NoError(t, exp.Precompute(context.Background(), words, 2))
	require.NoError(t, s.Close())

	s, err = badgerstore.Open(badgerstore.DefaultConfig(dir))
	require.NoError(t, err)
	defer s.Close()
	cached := shuffle.NewExpander(shuffle.WithStore(s))
	cached.MarkPrecomputed()
	fresh := shuffle.NewExpander()
	for _, w := range words {
		want, err := fresh.Expand(w)
		require.NoError(t, err)
		got, err := cached.Expand(w)
		require.NoError(t, err, w)
		assert.True(t, got.Equal(want), w)
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := badgerstore.Open(badgerstore.Config{})
	assert.ErrorIs(t, err, badgerstore.ErrPathRequired)
}
