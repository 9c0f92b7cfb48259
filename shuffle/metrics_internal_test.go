// SPDX-License-Identifier: MIT

package shuffle

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_Metrics(t *testing.T) {
	computed := testutil.ToFloat64(expansionsComputed)
	hits := testutil.ToFloat64(expansionLookups.WithLabelValues(resultHit))

	exp := NewExpander()
	_, err := exp.Expand("ab")
	require.NoError(t, err)
	// "ab" recurses into "b"
	assert.Equal(t, computed+2, testutil.ToFloat64(expansionsComputed))

	_, err = exp.Expand("ab")
	require.NoError(t, err)
	assert.Equal(t, hits+1, testutil.ToFloat64(expansionLookups.WithLabelValues(resultHit)))
}
