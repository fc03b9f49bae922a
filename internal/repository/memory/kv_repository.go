package memory

import (
	"context"
	"sync"

	"ai-studio-be/internal/repository/contract"
)

// KeyValueRepository is a map-backed stand-in for Redis, used by tests and
// as a degraded-mode fallback when Redis is unreachable at startup.
type KeyValueRepository struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ contract.IKeyValueRepository = &KeyValueRepository{}

func NewKeyValueRepository() *KeyValueRepository {
	return &KeyValueRepository{
		data: make(map[string]string),
	}
}

func (r *KeyValueRepository) Read(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, found := r.data[key]
	return value, found, nil
}

func (r *KeyValueRepository) Write(_ context.Context, key string, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}
