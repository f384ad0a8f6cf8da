package namegram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedModel(t *testing.T) {
	chain, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3, chain.Depth())
	require.Greater(t, chain.Observations(), int64(0))
	checkCountInvariant(t, chain.root)
}

func TestLoadReturnsCachedChain(t *testing.T) {
	c1, err := Load()
	require.NoError(t, err)
	c2, err := Load()
	require.NoError(t, err)
	require.Same(t, c1, c2)
}

func TestEmbeddedModelSeparatesNaturalFromRandom(t *testing.T) {
	chain, err := Load()
	require.NoError(t, err)

	for _, word := range []string{"username", "station", "totalCount"} {
		v, err := chain.Evaluate(word)
		require.NoError(t, err)
		require.Greater(t, v, 0.1, word)
	}

	for _, word := range []string{"qzxvkj", "aqwxGdRkdF6", "x7fQz9w"} {
		v, err := chain.Evaluate(word)
		require.NoError(t, err)
		require.Less(t, v, 0.001, word)
	}
}
