package validator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// CheckTree inspects a resolved include tree and reports every node that
// failed to resolve cleanly: nonexistent or unreadable targets, forbidden
// path characters, and direct self-inclusion. Commented references are
// inert and excluded unless includeCommented is set, mirroring how the
// tree was resolved.
func CheckTree(root *domain.Node, includeCommented bool) error {
	var problems []string

	root.Walk(func(node *domain.Node, depth int) {
		if node.Commented && !includeCommented {
			return
		}
		if !node.Flagged() {
			return
		}

		target := node.Name
		if node.BasePath != "" {
			target = filepath.Join(node.BasePath, node.Name)
		}

		switch {
		case node.SelfRecursive:
			problems = append(problems, fmt.Sprintf("includes its own parent: '%s'", target))
		case node.InvalidPath:
			problems = append(problems, fmt.Sprintf("forbidden path characters: '%s'", node.Name))
		case node.Missing:
			problems = append(problems, fmt.Sprintf("nonexistent or unreadable: '%s'", target))
		}
	})

	if len(problems) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}

	return nil
}
