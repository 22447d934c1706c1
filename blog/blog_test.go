package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InaamJr/Axceria/models"
)

func TestSeedDedupesDuplicateSlugs(t *testing.T) {
	j := New()

	// The seed carries three entries under the same slug; only the first
	// survives loading.
	assert.Len(t, j.All(), 3)

	p, ok := j.BySlug("what-makes-a-gift-feel-personal")
	require.True(t, ok)
	assert.Equal(t, 3, p.ID)
}

func TestNewWithKeepsFirstOccurrence(t *testing.T) {
	j := NewWith([]models.Post{
		{ID: 1, Slug: "a", Title: "first"},
		{ID: 2, Slug: "b", Title: "second"},
		{ID: 3, Slug: "a", Title: "shadowed"},
	})

	all := j.All()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "second", all[1].Title)
}

func TestBySlugUnknown(t *testing.T) {
	_, ok := New().BySlug("missing-post")
	assert.False(t, ok)
}

func TestRelated(t *testing.T) {
	j := New()

	t.Run("excludes the post itself", func(t *testing.T) {
		rel := j.Related("styling-minimal-gold-jewellery", 2)
		require.Len(t, rel, 2)
		for _, p := range rel {
			assert.NotEqual(t, "styling-minimal-gold-jewellery", p.Slug)
		}
	})

	t.Run("caps at n", func(t *testing.T) {
		assert.Len(t, j.Related("curate-the-perfect-axceria-gift-box", 1), 1)
	})

	t.Run("returns fewer when journal is small", func(t *testing.T) {
		small := NewWith([]models.Post{{ID: 1, Slug: "only"}})
		assert.Empty(t, small.Related("only", 2))
	})
}
