package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/InaamJr/Axceria/models"
)

// CatalogSource is the slice of the catalog the media service needs.
type CatalogSource interface {
	Get(id string) (models.Product, bool)
}

// MediaService serves optimized product photos. Source priority: a photo
// placed in the media directory by the Drive sync, then the product's
// remote thumb URL. Optimized output is cached on disk per product+size.
type MediaService struct {
	catalog  CatalogSource
	mediaDir string
	client   *http.Client
}

// NewMediaService creates a new MediaService.
func NewMediaService(catalog CatalogSource, mediaDir string) *MediaService {
	return &MediaService{
		catalog:  catalog,
		mediaDir: mediaDir,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// LocalMediaPath returns where the Drive sync places a product's photo.
func (s *MediaService) LocalMediaPath(productID string) string {
	return filepath.Join(s.mediaDir, productID+".jpg")
}

// GetOptimizedImage returns the optimized JPEG for a product at the given
// size ("thumb" or "medium"), serving from cache when possible.
func (s *MediaService) GetOptimizedImage(ctx context.Context, productID string, size string) ([]byte, error) {
	cachePath := GetCachePath(productID, size)
	if CacheExists(cachePath) {
		log.Printf("📸 GetOptimizedImage: cache hit product=%s size=%s", productID, size)
		return ReadFromCache(cachePath)
	}

	raw, err := s.sourceImage(ctx, productID)
	if err != nil {
		return nil, err
	}

	optimized, err := OptimizeImage(raw, size)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize image for product %s: %w", productID, err)
	}

	// Cache failures are not fatal; the image still ships
	if err := SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  GetOptimizedImage: failed to cache product=%s size=%s: %v", productID, size, err)
	}

	return optimized, nil
}

// InvalidateCache drops the cached renditions of a product, forcing the
// next request to re-optimize. Used after a media sync replaces the source.
func (s *MediaService) InvalidateCache(productID string) {
	for _, size := range []string{"thumb", "medium"} {
		path := GetCachePath(productID, size)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️  InvalidateCache: failed to remove %s: %v", path, err)
		}
	}
}

func (s *MediaService) sourceImage(ctx context.Context, productID string) ([]byte, error) {
	// Prefer a synced local photo
	localPath := s.LocalMediaPath(productID)
	if data, err := os.ReadFile(localPath); err == nil {
		log.Printf("📸 sourceImage: using synced photo %s", localPath)
		return data, nil
	}

	product, ok := s.catalog.Get(productID)
	if !ok {
		return nil, fmt.Errorf("product not found: %s", productID)
	}
	if product.Thumb == "" {
		return nil, fmt.Errorf("product %s has no image source", productID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, product.Thumb, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image source returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	return data, nil
}
