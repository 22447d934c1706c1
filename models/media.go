package models

// MediaFile represents one product photo discovered in the Drive folder.
type MediaFile struct {
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ProductID   string `json:"productId"`
	ImageURL    string `json:"imageUrl"`
}

// MediaSyncResponse represents the response for a media sync run
// Example response:
// {
//   "total": 6,
//   "synced": 4,
//   "skipped": 2,
//   "errors": []
// }
type MediaSyncResponse struct {
	Total   int      `json:"total"`
	Synced  int      `json:"synced"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}
