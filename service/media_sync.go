package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/InaamJr/Axceria/models"
)

// MediaSyncService pulls product photography from a Google Drive folder
// into the local media directory. Filenames carry the product id; files
// that do not resolve to a catalog product are skipped, not errors.
type MediaSyncService struct {
	driveService DriveServiceInterface
	catalog      CatalogSource
	media        *MediaService
}

// NewMediaSyncService creates a new MediaSyncService.
func NewMediaSyncService(driveService DriveServiceInterface, catalog CatalogSource, media *MediaService) *MediaSyncService {
	return &MediaSyncService{
		driveService: driveService,
		catalog:      catalog,
		media:        media,
	}
}

// SyncProductMedia downloads every matching photo in the folder, optimizes
// it and places it at the product's media path, then invalidates the
// product's rendition cache. Files already synced in this run (duplicate
// product ids) are skipped.
func (s *MediaSyncService) SyncProductMedia(folderID string) (*models.MediaSyncResponse, error) {
	log.Printf("🔄 Starting media sync for folder: %s", folderID)

	files, err := s.driveService.ListProductMedia(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media from Drive: %w", err)
	}

	result := &models.MediaSyncResponse{
		Total:  len(files),
		Errors: []string{},
	}
	seen := make(map[string]bool)

	log.Printf("📦 Found %d media files to process", len(files))

	for _, file := range files {
		if _, ok := s.catalog.Get(file.ProductID); !ok {
			log.Printf("⏭️  Skipping %s (no catalog product %s)", file.FileName, file.ProductID)
			result.Skipped++
			continue
		}

		if seen[file.ProductID] {
			log.Printf("⏭️  Skipping %s (product %s already synced in this run)", file.FileName, file.ProductID)
			result.Skipped++
			continue
		}
		seen[file.ProductID] = true

		data, err := s.driveService.DownloadImage(file.DriveFileID)
		if err != nil {
			msg := fmt.Sprintf("Failed to download %s (%s): %v", file.FileName, file.DriveFileID, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		optimized, err := OptimizeImage(data, "medium")
		if err != nil {
			msg := fmt.Sprintf("Failed to optimize %s (%s): %v", file.FileName, file.DriveFileID, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		target := s.media.LocalMediaPath(file.ProductID)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			msg := fmt.Sprintf("Failed to create media directory for %s: %v", file.FileName, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}
		if err := os.WriteFile(target, optimized, 0644); err != nil {
			msg := fmt.Sprintf("Failed to save %s: %v", file.FileName, err)
			log.Printf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		s.media.InvalidateCache(file.ProductID)

		log.Printf("✓ Synced photo for product %s: %s", file.ProductID, target)
		result.Synced++
	}

	log.Printf("🎉 Media sync completed: %d synced, %d skipped, %d failed out of %d total",
		result.Synced, result.Skipped, len(result.Errors), result.Total)
	return result, nil
}
