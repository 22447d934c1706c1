package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c := New()

	p, ok := c.Get("chain-figaro-50")
	require.True(t, ok)
	assert.Equal(t, "Figaro Chain", p.Title)
	assert.Equal(t, int64(14990), p.Price)

	_, ok = c.Get("no-such-product")
	assert.False(t, ok)
}

func TestFilterByCategory(t *testing.T) {
	c := New()

	chains := c.Filter("Chains", "")
	require.Len(t, chains, 1)
	assert.Equal(t, "chain-figaro-50", chains[0].ID)

	// "All" and empty category both match everything
	assert.Len(t, c.Filter("All", ""), len(c.All()))
	assert.Len(t, c.Filter("", ""), len(c.All()))
}

func TestFilterByQuery(t *testing.T) {
	c := New()

	t.Run("matches title case-insensitively", func(t *testing.T) {
		hits := c.Filter("", "FIGARO")
		require.Len(t, hits, 1)
		assert.Equal(t, "chain-figaro-50", hits[0].ID)
	})

	t.Run("matches category text", func(t *testing.T) {
		hits := c.Filter("", "ring")
		ids := make([]string, 0, len(hits))
		for _, p := range hits {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, "ring-signet-min")
	})

	t.Run("both filters must pass", func(t *testing.T) {
		assert.Empty(t, c.Filter("Chains", "signet"))
	})

	t.Run("no matches", func(t *testing.T) {
		assert.Empty(t, c.Filter("", "zzzz"))
	})
}

func TestCategoriesListsAllFirst(t *testing.T) {
	c := New()
	cats := c.Categories()
	require.NotEmpty(t, cats)
	assert.Equal(t, "All", cats[0])
}

func TestAllReturnsCopy(t *testing.T) {
	c := New()
	out := c.All()
	require.NotEmpty(t, out)
	out[0].Title = "mutated"
	fresh := c.All()
	assert.NotEqual(t, "mutated", fresh[0].Title)
}
