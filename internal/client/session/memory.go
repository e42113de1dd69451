package session

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository, used by tests and as a
// fallback when no durable store is configured.
type MemoryRepository struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string][]byte)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

func (r *MemoryRepository) SetMany(ctx context.Context, items map[string][]byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range items {
		r.items[key] = append([]byte(nil), value...)
	}
	return nil
}

func (r *MemoryRepository) DeleteMany(ctx context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.items, key)
	}
	return nil
}
