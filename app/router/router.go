package router

import (
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/app/controller"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Blog    *controller.BlogController
	GiftBox *controller.GiftBoxController
	Contact *controller.ContactController
	Media   *controller.MediaController
	Export  *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers every route on mux. Passing http.DefaultServeMux
// gives the plain ListenAndServe setup; tests pass their own mux.
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Catalog routes
	mux.HandleFunc("/api/products", controllers.Catalog.ListProducts)
	mux.HandleFunc("/api/products/", controllers.Catalog.GetProduct)
	mux.HandleFunc("/api/categories", controllers.Catalog.ListCategories)

	// Journal routes
	mux.HandleFunc("/api/posts", controllers.Blog.ListPosts)
	mux.HandleFunc("/api/posts/", controllers.Blog.GetPost)

	// Gift box routes
	mux.HandleFunc("/api/boxes", controllers.GiftBox.CreateBox)

	// Gift box actions (suffix routes first, then the generic /:id route)
	mux.HandleFunc("/api/boxes/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/api/boxes/")

		if strings.HasSuffix(path, "/checkout") {
			controllers.GiftBox.Checkout(w, r)
			return
		}
		if strings.HasSuffix(path, "/clear") {
			controllers.GiftBox.ClearBox(w, r)
			return
		}
		if strings.HasSuffix(path, "/note") {
			controllers.GiftBox.SetNote(w, r)
			return
		}
		// Handle DELETE /api/boxes/:id/items/:key
		if strings.Contains(path, "/items/") && r.Method == http.MethodDelete {
			controllers.GiftBox.RemoveItem(w, r)
			return
		}
		// Handle PUT/PATCH /api/boxes/:id/items/:key
		if strings.Contains(path, "/items/") && (r.Method == http.MethodPut || r.Method == http.MethodPatch) {
			controllers.GiftBox.UpdateItemQuantity(w, r)
			return
		}
		// Handle POST /api/boxes/:id/items
		if strings.HasSuffix(path, "/items") && r.Method == http.MethodPost {
			controllers.GiftBox.AddItem(w, r)
			return
		}
		// Generic GET /api/boxes/:id
		if r.Method == http.MethodGet {
			controllers.GiftBox.GetBox(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Contact route
	mux.HandleFunc("/api/contact", controllers.Contact.Submit)

	// Media routes
	mux.HandleFunc("/media/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Media.GetOptimizedImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})
	mux.HandleFunc("/admin/media/sync", controllers.Media.SyncMedia)

	// Printable exports
	mux.HandleFunc("/admin/export/render/catalog", controllers.Export.RenderCatalog)
	mux.HandleFunc("/admin/export/render/boxes/", controllers.Export.RenderBox)
	mux.HandleFunc("/admin/export/catalog.pdf", controllers.Export.CatalogPDF)
	mux.HandleFunc("/admin/export/boxes/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".pdf") {
			controllers.Export.BoxPDF(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})
}
