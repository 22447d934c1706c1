package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/InaamJr/Axceria/service"
)

// MediaController handles HTTP requests for product imagery
type MediaController struct {
	media *service.MediaService
	sync  *service.MediaSyncService // nil when Drive sync is not configured
}

// NewMediaController creates a new MediaController
func NewMediaController(media *service.MediaService, sync *service.MediaSyncService) *MediaController {
	return &MediaController{
		media: media,
		sync:  sync,
	}
}

// GetOptimizedImage handles GET /media/products/{id}/image?size=thumb|medium
// Serves the optimized JPEG rendition, building and caching it on first
// request.
func (c *MediaController) GetOptimizedImage(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetOptimizedImage: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/media/products/")
	productID := strings.TrimSuffix(path, "/image")
	if productID == "" || productID == path {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "thumb"
	}

	data, err := c.media.GetOptimizedImage(r.Context(), productID, size)
	if err != nil {
		log.Printf("❌ GetOptimizedImage: %v", err)
		if strings.Contains(err.Error(), "not found") {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to produce image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SyncMedia handles POST /admin/media/sync?folderId=YOUR_FOLDER_ID
// Example response: {"total": 6, "synced": 4, "skipped": 2, "errors": []}
func (c *MediaController) SyncMedia(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SyncMedia: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.sync == nil {
		log.Printf("❌ SyncMedia: Drive sync is not configured")
		http.Error(w, "media sync is not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId query parameter is required", http.StatusBadRequest)
		return
	}

	result, err := c.sync.SyncProductMedia(folderID)
	if err != nil {
		log.Printf("❌ SyncMedia: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync media: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("❌ SyncMedia: Error encoding response: %v", err)
	}
}
