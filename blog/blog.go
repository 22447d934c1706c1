// Package blog is the read-only journal collaborator.
package blog

import "github.com/InaamJr/Axceria/models"

// Journal serves blog posts from an in-memory list. Duplicate slugs in the
// seed are collapsed at load time, keeping the first occurrence, so slug
// lookups are unambiguous.
type Journal struct {
	posts []models.Post
}

// New creates a journal over the seed posts.
func New() *Journal {
	return NewWith(Seed)
}

// NewWith creates a journal over an explicit post list, deduplicating by
// slug in original order.
func NewWith(posts []models.Post) *Journal {
	seen := make(map[string]bool, len(posts))
	deduped := []models.Post{}
	for _, p := range posts {
		if seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		deduped = append(deduped, p)
	}
	return &Journal{posts: deduped}
}

// All returns every post in original order.
func (j *Journal) All() []models.Post {
	out := make([]models.Post, len(j.posts))
	copy(out, j.posts)
	return out
}

// BySlug returns the post with the given slug.
func (j *Journal) BySlug(slug string) (models.Post, bool) {
	for i := range j.posts {
		if j.posts[i].Slug == slug {
			return j.posts[i], true
		}
	}
	return models.Post{}, false
}

// Related returns up to n other posts for the post page rail.
func (j *Journal) Related(slug string, n int) []models.Post {
	out := []models.Post{}
	for i := range j.posts {
		if j.posts[i].Slug == slug {
			continue
		}
		out = append(out, j.posts[i])
		if len(out) == n {
			break
		}
	}
	return out
}
