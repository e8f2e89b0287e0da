// Package file provides a TreeCache persisted as JSON files on disk.
package file

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// Cache implements ports.TreeCache using the local filesystem.
// It stores each resolved tree as a JSON file in a configured directory.
type Cache struct {
	BasePath string
}

// NewCache creates a new Cache rooted at basePath.
// If basePath is empty, it defaults to ".adoctree/cache".
func NewCache(basePath string) *Cache {
	if basePath == "" {
		basePath = filepath.Join(".adoctree", "cache")
	}
	return &Cache{BasePath: basePath}
}

// path maps a cache key (a root document path) to a file name. Keys carry
// path separators, so the name is a digest of the key.
func (c *Cache) path(key string) string {
	return filepath.Join(c.BasePath, fmt.Sprintf("%x.json", md5.Sum([]byte(key))))
}

// Get retrieves the cached tree from its JSON file.
func (c *Cache) Get(ctx context.Context, key string) (*domain.Node, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}

	var tree domain.Node
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached tree: %w", err)
	}

	return &tree, nil
}

// Set persists the tree to a JSON file.
func (c *Cache) Set(ctx context.Context, key string, tree *domain.Node) error {
	// Ensure directory exists
	if err := os.MkdirAll(c.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure cache directory: %w", err)
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}

	if err := os.WriteFile(c.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// Delete removes the cached tree file.
func (c *Cache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}

	return nil
}
