// Package resolver builds the include tree of a document by reading each
// file, classifying its lines, and recursing into every include target it
// discovers.
//
// A single Resolver owns the nesting stack shared across the whole
// traversal. The stack is how comment fences and conditional blocks opened
// by an ancestor reach the includes discovered beneath it, so resolution is
// strictly single-threaded and depth-first: a child's own pushes and pops
// fully unwind before the next sibling's lines are scanned.
package resolver

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolfedh/adoctree/internal/logging"
	"github.com/rolfedh/adoctree/internal/scan"
	"github.com/rolfedh/adoctree/pkg/domain"
)

// invalidPathChars flag an include target as unresolvable wherever one of
// them appears in the raw captured string.
const invalidPathChars = `<>|*:`

// Resolver walks a document tree depth-first, populating children and
// status flags in place. Create one per traversal with New; reusing a
// Resolver across roots carries leftover nesting state between them.
type Resolver struct {
	showCommented bool
	logger        *slog.Logger

	// stack holds the currently open comment-fence tokens and conditional
	// directive bodies, interleaved in the order they were opened.
	stack []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithShowCommented makes the resolver analyze includes found inside
// comments instead of skipping them at the guard step.
func WithShowCommented(show bool) Option {
	return func(r *Resolver) {
		r.showCommented = show
	}
}

// WithLogger sets the structured logger used for debug traces.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver with an empty nesting stack.
func New(opts ...Option) *Resolver {
	r := &Resolver{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve reads the document node refers to, appends a child for every
// include directive in line order, and recurses into each child after the
// scan completes. Nodes that are commented (unless analysis of commented
// includes is on), self-recursive, invalid, or missing are never opened.
//
// Read failures never abort the walk: a target that does not exist or
// cannot be read is flagged Missing and the traversal moves on to the next
// sibling. Unbalanced endif directives are the one hard failure: popping an
// empty stack panics, matching the contract that malformed nesting is an
// authoring error outside the tool's scope.
func (r *Resolver) Resolve(node *domain.Node) {
	switch {
	case node.Commented && !r.showCommented:
		r.logger.Debug("skipping commented include", "name", node.Name)
		return
	case node.SelfRecursive:
		r.logger.Debug("skipping self-recursive include", "name", node.Name)
		return
	case node.InvalidPath:
		r.logger.Debug("skipping invalid include target", "name", node.Name)
		return
	case node.Missing:
		return
	}

	target := node.Name
	if node.BasePath != "" {
		target = filepath.Join(node.BasePath, node.Name)
		if _, err := os.Stat(target); err != nil {
			node.Missing = true
			r.logger.Debug("include target not found", "path", target)
			return
		}
	}

	data, err := os.ReadFile(target)
	if err != nil {
		// Exists-but-unreadable collapses into the same flag as missing.
		node.Missing = true
		r.logger.Debug("unreadable document", "path", target, "err", err)
		return
	}

	realDir := filepath.Join(node.BasePath, filepath.Dir(node.Name))
	if abs, err := filepath.Abs(realDir); err == nil {
		realDir = abs
	}

	for _, line := range strings.Split(string(data), "\n") {
		for _, inc := range scan.Includes(line) {
			child := &domain.Node{
				Name:          inc.Target,
				BasePath:      realDir,
				Commented:     inc.Marker != "" || r.topIsComment() || node.Commented,
				SelfRecursive: realDir == node.BasePath && filepath.Base(inc.Target) == node.Name,
				InvalidPath:   strings.ContainsAny(inc.Target, invalidPathChars),
				Conditions:    append([]string(nil), r.stack...),
			}
			node.Children = append(node.Children, child)
		}

		for _, token := range scan.Fences(line) {
			// Same-token toggle: a fence closes only the identical run of
			// slashes, so nested fences of equal length mismatch.
			if n := len(r.stack); n > 0 && r.stack[n-1] == token {
				r.stack = r.stack[:n-1]
			} else {
				r.stack = append(r.stack, token)
			}
		}

		for _, cond := range scan.Conditionals(line) {
			if cond.Marker != "" {
				continue
			}
			if strings.HasPrefix(cond.Directive, "endif") {
				r.stack = r.stack[:len(r.stack)-1]
				continue
			}
			r.stack = append(r.stack, cond.Directive)
		}
	}

	for _, child := range node.Children {
		r.Resolve(child)
	}
}

// topIsComment reports whether the innermost open nesting entry is a
// comment fence rather than a conditional body.
func (r *Resolver) topIsComment() bool {
	return len(r.stack) > 0 && strings.HasPrefix(r.stack[len(r.stack)-1], domain.CommentMarker)
}
