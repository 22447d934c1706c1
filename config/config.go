// Package config centralizes the environment-driven configuration.
// main loads .env first (development only); Load then populates the struct
// from the process environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable the storefront backend reads.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// SellerWhatsApp is the seller contact in E.164 form. Outbound links
	// are unavailable (not an error) when it carries fewer than 10 digits.
	SellerWhatsApp string `envconfig:"SELLER_WHATSAPP" default:"+94771425684"`
	ContactEmail   string `envconfig:"CONTACT_EMAIL" default:"hello@axceria.store"`

	// StorageDriver selects the gift box persistence adapter:
	// memory (default), file, or postgres.
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"memory"`
	StorageFile   string `envconfig:"STORAGE_FILE" default:"data/giftbox_state.json"`

	// BaseURL is where the export renderer reaches this server
	// (chromedp navigates to it when printing PDFs).
	BaseURL string `envconfig:"BASE_URL" default:"http://localhost:8080"`

	// MediaDir stores product photos placed by the Drive sync.
	MediaDir      string `envconfig:"MEDIA_DIR" default:"media/products"`
	DriveFolderID string `envconfig:"DRIVE_FOLDER_ID"`

	ChromePath string `envconfig:"CHROME_PATH"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	switch cfg.StorageDriver {
	case "memory", "file", "postgres":
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q: expected memory, file, or postgres", cfg.StorageDriver)
	}

	return &cfg, nil
}
