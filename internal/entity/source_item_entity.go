package entity

import (
	"time"

	"github.com/google/uuid"
)

// SourceItem is one user-uploaded input image. The library owns the payload
// and the display handle exclusively; the handle is released exactly once
// when the item is removed or the library is cleared.
type SourceItem struct {
	Id        uuid.UUID
	Name      string
	Size      int64
	MimeType  string
	Payload   []byte
	Handle    string
	CreatedAt time.Time
}
