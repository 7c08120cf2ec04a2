// Package storage persists entity collections as JSON files. Each
// collection lives in one file that is rewritten wholesale on every save;
// readers never observe a partial write because the rewrite goes through a
// temp file and rename.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Collection[T any] struct {
	path string
}

func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// Path returns the backing file path.
func (c *Collection[T]) Path() string {
	return c.path
}

// Load reads the whole collection. A missing file is an empty collection,
// not an error.
func (c *Collection[T]) Load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.path, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", c.path, err)
	}
	return items, nil
}

// Save rewrites the whole collection.
func (c *Collection[T]) Save(items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
