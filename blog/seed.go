package blog

import "github.com/InaamJr/Axceria/models"

// Seed is the raw post list as authored. It carries duplicate slugs
// (ids 3-5 repeat the same editorial); Journal dedupes at load.
var Seed = []models.Post{
	{
		ID:       1,
		Slug:     "curate-the-perfect-axceria-gift-box",
		Title:    "Gifting With Meaning — How to Curate the Perfect Box",
		Excerpt:  "Every piece tells a story. Discover how to build the perfect Axceria gift box that reflects personality, sentiment, and modern luxury.",
		Category: "Gifting",
		Date:     "2025-08-16",
		Hero:     "https://images.unsplash.com/photo-1648905737042-345d0e9d6585?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=2148",
		Image:    "https://images.unsplash.com/photo-1592903297149-37fb25202dfa?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1315",
		Content: []models.ContentBlock{
			{Type: "p", Text: "A truly personal gift begins with intention. Start by thinking of a feeling you want to deliver — comfort, celebration, or quiet elegance."},
			{Type: "h2", Text: "Start with a Hero Piece"},
			{Type: "p", Text: "Pick one item that defines the tone — a Figaro chain or a minimal watch. Then layer subtle accents that complement it."},
			{Type: "ul", Items: []string{
				"Choose a centerpiece (chain/watch).",
				"Add 1–2 supporting pieces (ring/bracelet).",
				"Finish with a luxe wrap and handwritten note.",
			}},
			{Type: "blockquote", Text: "Luxury is quiet confidence — your curation should whisper, not shout."},
		},
	},
	{
		ID:       2,
		Slug:     "styling-minimal-gold-jewellery",
		Title:    "Gold as an Emotion — Styling Minimal Jewellery",
		Excerpt:  "Gold never shouts; it whispers. Learn the art of minimal jewellery layering that elevates elegance and everyday confidence.",
		Category: "Style Notes",
		Date:     "2025-07-04",
		Hero:     "https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1287",
		Image:    "https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1287",
		Content: []models.ContentBlock{
			{Type: "p", Text: "Layer thin pieces at varying lengths for depth."},
			{Type: "h2", Text: "Three Rules We Love"},
			{Type: "ol", Items: []string{
				"Keep one hero layer.",
				"Balance matte and polish.",
				"Echo tones across accessories.",
			}},
		},
	},
	{
		ID:       3,
		Slug:     "what-makes-a-gift-feel-personal",
		Title:    "The Language of Details — What Makes a Gift Feel Personal",
		Excerpt:  "It's the ribbon, the scent, the texture of the paper — the smallest details that transform a simple gift into a lasting memory.",
		Category: "Editorial",
		Date:     "2025-05-28",
		Hero:     "https://images.unsplash.com/photo-1668127494486-f27a1d2b88f9?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1760",
		Image:    "https://images.unsplash.com/photo-1668127494486-f27a1d2b88f9?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1760",
		Content: []models.ContentBlock{
			{Type: "p", Text: "Texture invites touch. Choose materials with soul."},
			{Type: "h2", Text: "Detail Ideas"},
			{Type: "ul", Items: []string{"Wax seals", "Monogram cards", "Pastel wrap with gold ribbon"}},
		},
	},
	{
		ID:       4,
		Slug:     "what-makes-a-gift-feel-personal",
		Title:    "The Language of Details — What Makes a Gift Feel Personal",
		Excerpt:  "It's the ribbon, the scent, the texture of the paper — the smallest details that transform a simple gift into a lasting memory.",
		Category: "Editorial",
		Date:     "2025-05-28",
		Hero:     "https://images.unsplash.com/photo-1668127494486-f27a1d2b88f9?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1760",
		Image:    "https://images.unsplash.com/photo-1668127494486-f27a1d2b88f9?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1760",
		Content: []models.ContentBlock{
			{Type: "p", Text: "Texture invites touch. Choose materials with soul."},
			{Type: "h2", Text: "Detail Ideas"},
			{Type: "ul", Items: []string{"Wax seals", "Monogram cards", "Pastel wrap with gold ribbon"}},
		},
	},
	{
		ID:       5,
		Slug:     "what-makes-a-gift-feel-personal",
		Title:    "The Language of Details — What Makes a Gift Feel Personal",
		Excerpt:  "It's the ribbon, the scent, the texture of the paper — the smallest details that transform a simple gift into a lasting memory.",
		Category: "Editorial",
		Date:     "2025-05-28",
		Hero:     "https://images.unsplash.com/photo-1668127494486-f27a1d2b88f9?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1760",
		Image:    "https://images.unsplash.com/photo-1668127494486-f27a1d2b88f9?ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&q=80&w=1760",
		Content: []models.ContentBlock{
			{Type: "p", Text: "Texture invites touch. Choose materials with soul."},
			{Type: "h2", Text: "Detail Ideas"},
			{Type: "ul", Items: []string{"Wax seals", "Monogram cards", "Pastel wrap with gold ribbon"}},
		},
	},
}
