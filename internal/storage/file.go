package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileDriver persists each key as a JSON file in one directory. It is the
// default backend for development: no external services, survives restarts.
type FileDriver struct {
	mu  sync.Mutex
	dir string
}

// NewFileDriver creates the snapshot directory if needed.
func NewFileDriver(dir string) (*FileDriver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}
	return &FileDriver{dir: dir}, nil
}

func (d *FileDriver) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

// Load reads the file for key, or ErrNotFound if it was never written.
func (d *FileDriver) Load(_ context.Context, key string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Save writes the value to a temp file and renames it over the target, so a
// crash mid-write never leaves a truncated snapshot behind.
func (d *FileDriver) Save(_ context.Context, key string, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	tmp := d.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	if err := os.Rename(tmp, d.path(key)); err != nil {
		return fmt.Errorf("replacing %s: %w", key, err)
	}
	return nil
}
