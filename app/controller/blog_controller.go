package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/blog"
	"github.com/InaamJr/Axceria/models"
)

// BlogController handles HTTP requests for the journal
type BlogController struct {
	journal *blog.Journal
}

// NewBlogController creates a new BlogController
func NewBlogController(journal *blog.Journal) *BlogController {
	return &BlogController{journal: journal}
}

// ListPosts handles GET /api/posts
func (c *BlogController) ListPosts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListPosts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.PostListResponse{Posts: c.journal.All()}); err != nil {
		log.Printf("❌ ListPosts: Error encoding response: %v", err)
	}
}

// GetPost handles GET /api/posts/{slug}
// Example response includes the post plus up to 2 related posts for the
// post page rail.
func (c *BlogController) GetPost(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetPost: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/posts/")
	if slug == "" {
		http.Error(w, "post slug is required", http.StatusBadRequest)
		return
	}

	post, ok := c.journal.BySlug(slug)
	if !ok {
		log.Printf("❌ GetPost: Post not found: %s", slug)
		http.Error(w, "post not found", http.StatusNotFound)
		return
	}

	resp := models.PostDetailResponse{
		Post:    post,
		Related: c.journal.Related(slug, 2),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ GetPost: Error encoding response: %v", err)
	}
}
