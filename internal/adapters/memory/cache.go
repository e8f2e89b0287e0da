// Package memory provides an in-process TreeCache with LRU eviction.
package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// DefaultSize bounds the cache when the configured size is not positive.
const DefaultSize = 128

// Cache implements ports.TreeCache in process memory.
type Cache struct {
	entries *lru.Cache[string, *domain.Node]
}

// New creates a Cache holding at most size trees.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *domain.Node](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached tree for key.
func (c *Cache) Get(_ context.Context, key string) (*domain.Node, error) {
	tree, ok := c.entries.Get(key)
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return tree, nil
}

// Set stores the tree for key.
func (c *Cache) Set(_ context.Context, key string, tree *domain.Node) error {
	c.entries.Add(key, tree)
	return nil
}

// Delete removes the key.
func (c *Cache) Delete(_ context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}
