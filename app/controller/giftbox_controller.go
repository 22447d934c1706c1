package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/catalog"
	"github.com/InaamJr/Axceria/giftbox"
	"github.com/InaamJr/Axceria/models"
)

// GiftBoxController handles HTTP requests for gift boxes
type GiftBoxController struct {
	boxes   *giftbox.Manager
	catalog *catalog.Catalog
}

// NewGiftBoxController creates a new GiftBoxController
func NewGiftBoxController(boxes *giftbox.Manager, cat *catalog.Catalog) *GiftBoxController {
	return &GiftBoxController{
		boxes:   boxes,
		catalog: cat,
	}
}

// boxPath splits "/api/boxes/{id}[/rest...]" into id and the remainder.
func boxPath(r *http.Request) (id string, rest string) {
	path := strings.TrimPrefix(r.URL.Path, "/api/boxes/")
	parts := strings.SplitN(path, "/", 2)
	id = parts[0]
	if len(parts) == 2 {
		rest = parts[1]
	}
	return id, rest
}

// CreateBox handles POST /api/boxes
// Example response: {"id": "c2c5a8dc-59f5-4a57-9c6a-2f8a4c0d9e11"}
func (c *GiftBoxController) CreateBox(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateBox: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	box := c.boxes.Create()
	snapshot := box.Snapshot()

	log.Printf("✅ CreateBox: Successfully created box id=%s", snapshot.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(models.CreateBoxResponse{ID: snapshot.ID}); err != nil {
		log.Printf("❌ CreateBox: Error encoding response: %v", err)
	}
}

// GetBox handles GET /api/boxes/{id}
// Example response:
// {
//   "id": "c2c5a8dc-59f5-4a57-9c6a-2f8a4c0d9e11",
//   "items": [ { "key": "chain-figaro-50:50", "title": "Figaro Chain", "qty": 1, "price": 14990 } ],
//   "note": "gift wrap please",
//   "subtotal": 14990,
//   "open": true
// }
func (c *GiftBoxController) GetBox(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetBox: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := boxPath(r)
	if id == "" {
		http.Error(w, "box id is required", http.StatusBadRequest)
		return
	}

	snapshot := c.boxes.Open(id).Snapshot()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		log.Printf("❌ GetBox: Error encoding response: %v", err)
	}
}

// AddItem handles POST /api/boxes/{id}/items
// Example request:
// POST /api/boxes/c2c5a8dc/items
// {"productId": "chain-figaro-50", "variant": "50", "qty": 1}
// An unknown variant value falls back to the product's base price; an
// unknown product is a 404.
func (c *GiftBoxController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := boxPath(r)

	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddItem: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	product, ok := c.catalog.Get(req.ProductID)
	if !ok {
		log.Printf("❌ AddItem: Product not found: %s", req.ProductID)
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	variant := product.VariantByValue(req.Variant)

	qty := req.Qty
	if qty == 0 {
		qty = 1
	}

	box := c.boxes.Open(id)
	box.AddItem(product, variant, qty)

	log.Printf("✅ AddItem: Added product=%s variant=%q qty=%d to box=%s", req.ProductID, req.Variant, qty, id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(box.Snapshot()); err != nil {
		log.Printf("❌ AddItem: Error encoding response: %v", err)
	}
}

// UpdateItemQuantity handles PUT/PATCH /api/boxes/{id}/items/{key}
// Example request: {"qty": 3}
// A qty <= 0 removes the line. Unknown keys are a silent no-op.
func (c *GiftBoxController) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateItemQuantity: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, rest := boxPath(r)
	key := strings.TrimPrefix(rest, "items/")
	if key == "" {
		http.Error(w, "item key is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateItemQuantity: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	box := c.boxes.Open(id)
	box.UpdateQty(key, req.Qty)

	log.Printf("✅ UpdateItemQuantity: box=%s key=%s qty=%d", id, key, req.Qty)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(box.Snapshot()); err != nil {
		log.Printf("❌ UpdateItemQuantity: Error encoding response: %v", err)
	}
}

// RemoveItem handles DELETE /api/boxes/{id}/items/{key}
func (c *GiftBoxController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RemoveItem: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, rest := boxPath(r)
	key := strings.TrimPrefix(rest, "items/")
	if key == "" {
		http.Error(w, "item key is required", http.StatusBadRequest)
		return
	}

	box := c.boxes.Open(id)
	box.RemoveItem(key)

	log.Printf("✅ RemoveItem: box=%s key=%s", id, key)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(box.Snapshot()); err != nil {
		log.Printf("❌ RemoveItem: Error encoding response: %v", err)
	}
}

// SetNote handles PUT /api/boxes/{id}/note
// Example request: {"note": "gift wrap please"}
func (c *GiftBoxController) SetNote(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SetNote: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := boxPath(r)

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetNote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	box := c.boxes.Open(id)
	box.SetNote(req.Note)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(box.Snapshot()); err != nil {
		log.Printf("❌ SetNote: Error encoding response: %v", err)
	}
}

// ClearBox handles POST /api/boxes/{id}/clear
func (c *GiftBoxController) ClearBox(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ClearBox: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := boxPath(r)

	box := c.boxes.Open(id)
	box.Clear()

	log.Printf("✅ ClearBox: box=%s cleared", id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(box.Snapshot()); err != nil {
		log.Printf("❌ ClearBox: Error encoding response: %v", err)
	}
}

// Checkout handles POST /api/boxes/{id}/checkout
// Example request: {"name": "Amal", "phone": "0771234567"}
// Responds 409 when the box is empty or no usable seller number is
// configured; the client disables its send affordance on that status.
func (c *GiftBoxController) Checkout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Checkout: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, _ := boxPath(r)

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Checkout: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	box := c.boxes.Open(id)
	snapshot := box.Snapshot()
	if len(snapshot.Items) == 0 {
		log.Printf("❌ Checkout: box=%s is empty", id)
		http.Error(w, "gift box is empty", http.StatusConflict)
		return
	}

	link, ok := box.BuildOrderLink(models.Customer{Name: req.Name, Phone: req.Phone})
	if !ok {
		log.Printf("❌ Checkout: no usable seller contact configured")
		http.Error(w, "ordering via WhatsApp is not available", http.StatusConflict)
		return
	}

	log.Printf("✅ Checkout: box=%s link ready", id)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.CheckoutResponse{WhatsAppURL: link}); err != nil {
		log.Printf("❌ Checkout: Error encoding response: %v", err)
	}
}
