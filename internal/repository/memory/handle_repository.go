package memory

import (
	"ai-studio-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

type blob struct {
	payload  []byte
	mimeType string
}

// HandleRepository keeps display-handle payloads in process memory. Handles
// never expire on their own; the library releases them explicitly.
type HandleRepository struct {
	cache *cache.Cache
}

var _ contract.IHandleRepository = &HandleRepository{}

func NewHandleRepository() *HandleRepository {
	return &HandleRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *HandleRepository) Mint(payload []byte, mimeType string) string {
	handle := uuid.New().String()
	r.cache.Set(handle, blob{payload: payload, mimeType: mimeType}, cache.NoExpiration)
	return handle
}

func (r *HandleRepository) Resolve(handle string) ([]byte, string, bool) {
	if x, found := r.cache.Get(handle); found {
		b := x.(blob)
		return b.payload, b.mimeType, true
	}
	return nil, "", false
}

func (r *HandleRepository) Release(handle string) {
	r.cache.Delete(handle)
}
