package app

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/InaamJr/Axceria/app/controller"
	"github.com/InaamJr/Axceria/app/router"
	"github.com/InaamJr/Axceria/blog"
	"github.com/InaamJr/Axceria/catalog"
	"github.com/InaamJr/Axceria/config"
	"github.com/InaamJr/Axceria/db"
	"github.com/InaamJr/Axceria/giftbox"
	"github.com/InaamJr/Axceria/service"
	"github.com/InaamJr/Axceria/storage"
)

// Initialize wires the application and registers routes on mux.
func Initialize(cfg *config.Config, mux *http.ServeMux) error {
	// Pick the gift box persistence adapter
	store, err := buildStore(cfg)
	if err != nil {
		return err
	}

	if err := service.EnsureCacheDir(); err != nil {
		return err
	}

	// Collaborators
	cat := catalog.New()
	journal := blog.New()
	boxes := giftbox.NewManager(cfg.SellerWhatsApp, store)

	// Services
	mediaService := service.NewMediaService(cat, cfg.MediaDir)
	exportService := service.NewExportService(cat, cfg.BaseURL)

	// Drive sync is optional: it needs service account credentials
	var syncService *service.MediaSyncService
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		driveService, err := service.NewDriveService(credentialsPath)
		if err != nil {
			return err
		}
		syncService = service.NewMediaSyncService(driveService, cat, mediaService)
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, media sync disabled")
	}

	// Create controllers
	controllers := &router.Controllers{
		Catalog: controller.NewCatalogController(cat),
		Blog:    controller.NewBlogController(journal),
		GiftBox: controller.NewGiftBoxController(boxes, cat),
		Contact: controller.NewContactController(cfg.SellerWhatsApp, cfg.ContactEmail),
		Media:   controller.NewMediaController(mediaService, syncService),
		Export:  controller.NewExportController(exportService, boxes),
	}

	router.SetupRoutes(mux, controllers)

	return nil
}

func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case "memory":
		log.Printf("📦 Gift box storage: in-memory (state is lost on restart)")
		return storage.NewMemory(), nil
	case "file":
		log.Printf("📦 Gift box storage: file %s", cfg.StorageFile)
		return storage.NewFile(cfg.StorageFile)
	case "postgres":
		log.Printf("📦 Gift box storage: postgres")
		if err := db.InitDB(); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.EnsureSchema(); err != nil {
			return nil, err
		}
		return storage.NewPostgres(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}
}
