package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/catalog"
	"github.com/InaamJr/Axceria/models"
)

// CatalogController handles HTTP requests for the product catalog
type CatalogController struct {
	catalog *catalog.Catalog
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{catalog: cat}
}

// ListProducts handles GET /api/products?category=Chains&q=figaro
// Category "All" (or omitted) matches everything; q matches title or
// category, case-insensitively.
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	products := c.catalog.Filter(category, query)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := models.ProductListResponse{
		Products:   products,
		Categories: c.catalog.Categories(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ ListProducts: Error encoding response: %v", err)
	}
}

// GetProduct handles GET /api/products/{id}
func (c *CatalogController) GetProduct(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetProduct: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" {
		http.Error(w, "product id is required", http.StatusBadRequest)
		return
	}

	product, ok := c.catalog.Get(id)
	if !ok {
		log.Printf("❌ GetProduct: Product not found: %s", id)
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(product); err != nil {
		log.Printf("❌ GetProduct: Error encoding response: %v", err)
	}
}

// ListCategories handles GET /api/categories
func (c *CatalogController) ListCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(c.catalog.Categories()); err != nil {
		log.Printf("❌ ListCategories: Error encoding response: %v", err)
	}
}
