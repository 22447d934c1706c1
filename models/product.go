package models

// Variant represents a purchasable option of a product (length, ring size,
// wrap style) carrying its own price override.
type Variant struct {
	Label string `json:"label"` // Human-readable (e.g., "50 cm")
	Value string `json:"value"` // Stable key fragment (e.g., "50")
	Price int64  `json:"price"` // Whole LKR
}

// Product represents a catalog entry
// Example:
// {
//   "id": "chain-figaro-50",
//   "title": "Figaro Chain",
//   "price": 14990,
//   "category": "Chains",
//   "thumb": "https://images.unsplash.com/...",
//   "variants": [
//     { "label": "45 cm", "value": "45", "price": 13990 },
//     { "label": "50 cm", "value": "50", "price": 14990 }
//   ]
// }
type Product struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"` // Base price in whole LKR
	Category string    `json:"category"`
	Thumb    string    `json:"thumb"`
	Variants []Variant `json:"variants,omitempty"`
}

// VariantByValue returns the variant with the given value, or nil.
func (p *Product) VariantByValue(value string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Value == value {
			return &p.Variants[i]
		}
	}
	return nil
}

// ProductListResponse represents the response for listing products
// Example response:
// {
//   "products": [ { "id": "chain-figaro-50", ... } ],
//   "categories": ["All", "Chains", "Rings", "Bracelets", "Watches", "Gifts"]
// }
type ProductListResponse struct {
	Products   []Product `json:"products"`
	Categories []string  `json:"categories"`
}
