package catalog

import "github.com/InaamJr/Axceria/models"

// Categories is the fixed display order of catalog categories. "All" is a
// filter pseudo-category, not a product attribute.
var Categories = []string{"All", "Chains", "Rings", "Bracelets", "Watches", "Gifts"}

// Seed is the launch catalog. Replace images and expand as needed.
var Seed = []models.Product{
	{
		ID:       "chain-figaro-50",
		Title:    "Figaro Chain",
		Price:    14990,
		Category: "Chains",
		Thumb:    "https://images.unsplash.com/photo-1613498510372-8901cad084a2?q=80&w=1337&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Variants: []models.Variant{
			{Label: "45 cm", Value: "45", Price: 13990},
			{Label: "50 cm", Value: "50", Price: 14990},
			{Label: "55 cm", Value: "55", Price: 15990},
		},
	},
	{
		ID:       "ring-signet-min",
		Title:    "Minimal Signet Ring",
		Price:    8990,
		Category: "Rings",
		Thumb:    "https://images.unsplash.com/photo-1543294001-f7cd5d7fb516?q=80&w=800&auto=format&fit=crop",
		Variants: []models.Variant{
			{Label: "Size 7", Value: "7", Price: 8990},
			{Label: "Size 8", Value: "8", Price: 8990},
			{Label: "Size 9", Value: "9", Price: 8990},
		},
	},
	{
		ID:       "bracelet-rope",
		Title:    "Rope Bracelet",
		Price:    6450,
		Category: "Bracelets",
		Thumb:    "https://images.unsplash.com/photo-1742402512005-d34fcefe939d?q=80&w=1760&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Variants: []models.Variant{
			{Label: "Small", Value: "S", Price: 6450},
			{Label: "Medium", Value: "M", Price: 6450},
			{Label: "Large", Value: "L", Price: 6450},
		},
	},
	{
		ID:       "watch-minimal",
		Title:    "Minimal Watch",
		Price:    23990,
		Category: "Watches",
		Thumb:    "https://images.unsplash.com/photo-1595923533867-ff8a01335ff9?q=80&w=2670&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
	},
	{
		ID:       "gift-wrap",
		Title:    "Premium Gift Wrap",
		Price:    990,
		Category: "Gifts",
		Thumb:    "https://images.unsplash.com/photo-1575075835950-99efb232e2eb?q=80&w=927&auto=format&fit=crop&ixlib=rb-4.1.0&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D",
		Variants: []models.Variant{
			{Label: "Pastel + Gold", Value: "pastel-gold", Price: 990},
			{Label: "Ivory + Champagne ", Value: "ivory-champ", Price: 1250},
		},
	},
}
