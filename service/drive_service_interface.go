package service

import "github.com/InaamJr/Axceria/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListProductMedia(folderID string) ([]models.MediaFile, error)
	DownloadImage(fileID string) ([]byte, error)
}
