package domain

import "strings"

// CommentMarker is the AsciiDoc line-comment token. Comment fences are runs
// of four or more of the same character, so the marker doubles as the prefix
// test for "is this nesting-stack entry a fence".
const CommentMarker = "//"

// Status tags rendered in front of a node name, in this fixed order.
const (
	TagCommented     = "//"
	TagSelfRecursive = "R!"
	TagInvalidPath   = "X!"
	TagMissing       = "N!"
)

// Node represents one reference in the include graph: the root document or a
// single include::target[] occurrence. Nodes are created the moment an include
// directive is recognized and are only mutated during their own resolution.
type Node struct {
	// Name is the include target exactly as written in the source,
	// not yet joined with BasePath.
	Name string `json:"name" yaml:"name"`

	// BasePath is the directory against which Name resolves. Empty for the
	// root node, which the host constructs from a ready-to-open path.
	BasePath string `json:"base_path,omitempty" yaml:"base_path,omitempty"`

	// Commented marks a reference that sits inside an active comment: its own
	// line carried a leading marker, an enclosing comment fence was open, or
	// the parent itself was commented. Sticky down the tree.
	Commented bool `json:"commented,omitempty" yaml:"commented,omitempty"`

	// SelfRecursive marks a reference that appears to point back at its
	// immediate parent (same directory, same file name). Longer cycles are
	// not detected.
	SelfRecursive bool `json:"self_recursive,omitempty" yaml:"self_recursive,omitempty"`

	// InvalidPath marks a target containing characters disallowed in paths.
	InvalidPath bool `json:"invalid_path,omitempty" yaml:"invalid_path,omitempty"`

	// Missing marks a target whose resolved location did not exist, or could
	// not be read, when resolution tried to open it.
	Missing bool `json:"missing,omitempty" yaml:"missing,omitempty"`

	// Children holds the includes discovered in this document, in line order.
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`

	// Conditions is the snapshot of the nesting stack taken when this
	// reference was discovered. It interleaves open comment-fence tokens with
	// open conditional directive bodies; use ActiveConditions for the
	// conditional entries alone.
	Conditions []string `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// Tags returns the node's status tags concatenated in fixed order
// (commented, self-recursive, invalid path, missing), without a separator.
func (n *Node) Tags() string {
	var sb strings.Builder
	if n.Commented {
		sb.WriteString(TagCommented)
	}
	if n.SelfRecursive {
		sb.WriteString(TagSelfRecursive)
	}
	if n.InvalidPath {
		sb.WriteString(TagInvalidPath)
	}
	if n.Missing {
		sb.WriteString(TagMissing)
	}
	return sb.String()
}

// Flagged reports whether the node carries a defect flag. Commented is a
// state, not a defect, and is excluded.
func (n *Node) Flagged() bool {
	return n.SelfRecursive || n.InvalidPath || n.Missing
}

// ActiveConditions returns the conditional directive bodies enclosing this
// node, dropping comment-fence tokens from the snapshot.
func (n *Node) ActiveConditions() []string {
	var conds []string
	for _, c := range n.Conditions {
		if strings.HasPrefix(c, CommentMarker) {
			continue
		}
		conds = append(conds, c)
	}
	return conds
}

// Walk visits the node and its descendants depth-first in pre-order, the
// same order resolution and rendering use. The callback receives each node
// with its depth below the receiver (0 for the receiver itself).
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}
