package repositories

import (
	"context"
	"sync"
)

// MemoryRepository keeps values in process memory. Nothing survives a restart.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ Repository = &MemoryRepository{}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[string][]byte),
	}
}

func (r *MemoryRepository) Close(ctx context.Context) error {
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[key]
	if !ok {
		return nil, &ErrNotFound{Key: key}
	}
	return append([]byte(nil), value...), nil
}

func (r *MemoryRepository) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = append([]byte(nil), value...)
	return nil
}
