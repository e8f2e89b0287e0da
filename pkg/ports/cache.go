package ports

import (
	"context"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// TreeCache caches resolved include trees keyed by their root path.
type TreeCache interface {
	// Get returns the cached tree for key.
	// Returns domain.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) (*domain.Node, error)

	// Set stores the tree for key.
	Set(ctx context.Context, key string, tree *domain.Node) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
