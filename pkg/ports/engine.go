package ports

import (
	"context"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// TreeEngine resolves a root document path into its include tree.
// The library facade implements it; the HTTP and MCP adapters consume it.
type TreeEngine interface {
	// ResolveTree builds the annotated include tree rooted at path. The
	// traversal itself is synchronous and runs to completion; ctx is for
	// the adapters sitting in front of it.
	ResolveTree(ctx context.Context, path string) (*domain.Node, error)
}
