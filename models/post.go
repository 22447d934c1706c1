package models

// ContentBlock is one typed block of post body content.
// Type is one of: "p", "h2", "ul", "ol", "blockquote".
// Text is used for p/h2/blockquote; Items for ul/ol.
type ContentBlock struct {
	Type  string   `json:"type"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// Post represents a blog post
// Example:
// {
//   "id": 1,
//   "slug": "curate-the-perfect-axceria-gift-box",
//   "title": "Gifting With Meaning — How to Curate the Perfect Box",
//   "excerpt": "Every piece tells a story...",
//   "category": "Gifting",
//   "date": "2025-08-16",
//   "hero": "https://images.unsplash.com/...",
//   "image": "https://images.unsplash.com/...",
//   "content": [ { "type": "p", "text": "..." } ]
// }
type Post struct {
	ID       int            `json:"id"`
	Slug     string         `json:"slug"`
	Title    string         `json:"title"`
	Excerpt  string         `json:"excerpt"`
	Category string         `json:"category"`
	Date     string         `json:"date"`
	Hero     string         `json:"hero"`
	Image    string         `json:"image"`
	Content  []ContentBlock `json:"content"`
}

// PostListResponse represents the response for listing posts
type PostListResponse struct {
	Posts []Post `json:"posts"`
}

// PostDetailResponse represents the response for a single post with a rail
// of related posts for the post page.
type PostDetailResponse struct {
	Post
	Related []Post `json:"related"`
}
