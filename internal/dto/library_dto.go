package dto

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile is the raw input the controller extracts from a multipart
// form part before handing it to the library.
type UploadedFile struct {
	Name     string
	Size     int64
	MimeType string
	Payload  []byte
}

type SourceItemResponse struct {
	Id         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	DisplayURL string    `json:"display_url"`
	Selected   bool      `json:"selected"`
	CreatedAt  time.Time `json:"created_at"`
}

type LibrarySnapshotResponse struct {
	Items         []SourceItemResponse `json:"items"`
	SelectedCount int                  `json:"selected_count"`
}

type AddItemsResponse struct {
	Added   int `json:"added"`
	Skipped int `json:"skipped"`
}
