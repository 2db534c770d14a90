package storage

import (
	"context"
	"sync"
)

// MemoryDriver keeps blobs in a map. Used in tests and as a throwaway
// backend; nothing survives a restart.
type MemoryDriver struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryDriver creates an empty in-memory driver.
func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{data: make(map[string][]byte)}
}

// Load returns a copy of the stored value or ErrNotFound.
func (d *MemoryDriver) Load(_ context.Context, key string) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	value, ok := d.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Save stores a copy of value under key.
func (d *MemoryDriver) Save(_ context.Context, key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	d.data[key] = stored
	return nil
}
