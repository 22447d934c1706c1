// Package catalog is the read-only product collaborator. Products are
// static seed data in this repository; the interface generalizes to any
// source.
package catalog

import (
	"strings"

	"github.com/InaamJr/Axceria/models"
)

// Catalog serves product lookups and filtering over an in-memory product
// list. Products are returned as copies; callers cannot mutate the seed.
type Catalog struct {
	products []models.Product
}

// New creates a catalog over the launch seed.
func New() *Catalog {
	return &Catalog{products: Seed}
}

// NewWith creates a catalog over an explicit product list (tests, future
// external sources).
func NewWith(products []models.Product) *Catalog {
	return &Catalog{products: products}
}

// All returns every product in display order.
func (c *Catalog) All() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the category filter list, "All" first.
func (c *Catalog) Categories() []string {
	out := make([]string, len(Categories))
	copy(out, Categories)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (models.Product, bool) {
	for i := range c.products {
		if c.products[i].ID == id {
			return c.products[i], true
		}
	}
	return models.Product{}, false
}

// Filter returns products matching a category and a free-text query.
// Category "All" (or empty) matches everything; the query matches against
// title or category, case-insensitively. Both filters must pass.
func (c *Catalog) Filter(category, query string) []models.Product {
	query = strings.ToLower(query)
	out := []models.Product{}
	for i := range c.products {
		p := &c.products[i]
		byCat := category == "" || category == "All" || p.Category == category
		byText := query == "" ||
			strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Category), query)
		if byCat && byText {
			out = append(out, *p)
		}
	}
	return out
}
