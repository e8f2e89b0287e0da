package adoctree

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rolfedh/adoctree/internal/logging"
	"github.com/rolfedh/adoctree/internal/presentation/tree"
	"github.com/rolfedh/adoctree/internal/resolver"
	"github.com/rolfedh/adoctree/pkg/domain"
)

// Engine is the high-level entry point for the adoctree library.
// It wraps the internal resolver and provides a simplified API for consumers.
type Engine struct {
	root          string
	showCommented bool
	logger        *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithShowCommented makes the engine analyze and render includes found
// inside comments instead of skipping them.
func WithShowCommented(show bool) Option {
	return func(e *Engine) {
		e.showCommented = show
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine for the document at rootPath. The path is
// used as given; it is not opened until Resolve runs.
func New(rootPath string, opts ...Option) (*Engine, error) {
	if rootPath == "" {
		return nil, fmt.Errorf("rootPath is required")
	}

	eng := &Engine{root: rootPath}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	return eng, nil
}

// Resolve builds the annotated include tree for the engine's root document.
// Every call walks the filesystem afresh with its own nesting state, so
// resolving twice yields structurally identical trees. Unresolvable targets
// surface as node flags, never as errors.
func (e *Engine) Resolve() *domain.Node {
	root := &domain.Node{Name: e.root}
	resolver.New(
		resolver.WithShowCommented(e.showCommented),
		resolver.WithLogger(e.logger),
	).Resolve(root)
	return root
}

// Render resolves the tree and writes its annotated text form to w.
func (e *Engine) Render(w io.Writer) {
	tree.Render(w, e.Resolve(), tree.Options{ShowCommented: e.showCommented})
}

// Service adapts the library to the ports.TreeEngine interface consumed by
// the HTTP and MCP adapters. The zero value resolves with default options.
type Service struct {
	ShowCommented bool
	Logger        *slog.Logger
}

// ResolveTree builds the include tree rooted at path.
func (s *Service) ResolveTree(ctx context.Context, path string) (*domain.Node, error) {
	opts := []Option{WithShowCommented(s.ShowCommented)}
	if s.Logger != nil {
		opts = append(opts, WithLogger(s.Logger))
	}

	eng, err := New(path, opts...)
	if err != nil {
		return nil, err
	}

	return eng.Resolve(), nil
}
