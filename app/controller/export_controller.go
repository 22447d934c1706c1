package controller

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/giftbox"
	"github.com/InaamJr/Axceria/service"
)

// ExportController handles HTTP requests for printable exports. The render
// endpoints serve the HTML that headless Chrome prints; the .pdf endpoints
// return the finished document.
type ExportController struct {
	export *service.ExportService
	boxes  *giftbox.Manager
}

// NewExportController creates a new ExportController
func NewExportController(export *service.ExportService, boxes *giftbox.Manager) *ExportController {
	return &ExportController{
		export: export,
		boxes:  boxes,
	}
}

// RenderCatalog handles GET /admin/export/render/catalog
func (c *ExportController) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, err := c.export.RenderCatalogHTML()
	if err != nil {
		log.Printf("❌ RenderCatalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// RenderBox handles GET /admin/export/render/boxes/{id}
func (c *ExportController) RenderBox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/export/render/boxes/")
	if id == "" {
		http.Error(w, "box id is required", http.StatusBadRequest)
		return
	}

	snapshot := c.boxes.Open(id).Snapshot()
	html, err := c.export.RenderBoxHTML(snapshot)
	if err != nil {
		log.Printf("❌ RenderBox: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render box summary: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// CatalogPDF handles GET /admin/export/catalog.pdf
func (c *ExportController) CatalogPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CatalogPDF: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pdf, err := c.export.GeneratePDF(r.Context(), "/admin/export/render/catalog")
	if err != nil {
		log.Printf("❌ CatalogPDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CatalogPDF: Generated %d bytes", len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="axceria-collection.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// BoxPDF handles GET /admin/export/boxes/{id}.pdf
func (c *ExportController) BoxPDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 BoxPDF: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/admin/export/boxes/")
	id = strings.TrimSuffix(id, ".pdf")
	if id == "" {
		http.Error(w, "box id is required", http.StatusBadRequest)
		return
	}

	pdf, err := c.export.GeneratePDF(r.Context(), "/admin/export/render/boxes/"+id)
	if err != nil {
		log.Printf("❌ BoxPDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ BoxPDF: Generated %d bytes for box=%s", len(pdf), id)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="axceria-gift-box.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
