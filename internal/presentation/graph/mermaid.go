package graph

import (
	"fmt"
	"strings"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the include graph.
// Styling mirrors the tree annotations:
// - Missing targets: red dashed border
// - Invalid paths: amber
// - Self-recursive references: red
// - Commented references: gray, reached over a dotted edge
// Conditional directive bodies label the edge into the node they guard.
func GenerateMermaid(root *domain.Node) string {
	ids := make(map[*domain.Node]string)
	count := 0
	root.Walk(func(node *domain.Node, _ int) {
		ids[node] = fmt.Sprintf("n%d", count)
		count++
	})

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	root.Walk(func(node *domain.Node, _ int) {
		id := ids[node]
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", id, escapeMermaidLabel(node.Name)))

		for _, child := range node.Children {
			arrow := "-->"
			if child.Commented {
				arrow = "-.->"
			}
			if conds := child.ActiveConditions(); len(conds) > 0 {
				label := escapeMermaidLabel(strings.Join(conds, " "))
				if child.Commented {
					arrow = fmt.Sprintf("-. \"%s\" .->", label)
				} else {
					arrow = fmt.Sprintf("-- \"%s\" -->", label)
				}
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", id, arrow, ids[child]))
		}
	})

	var missing, invalid, recursive, commented []string
	root.Walk(func(node *domain.Node, _ int) {
		// One class per node; defect styling outranks comment styling.
		switch {
		case node.Missing:
			missing = append(missing, ids[node])
		case node.InvalidPath:
			invalid = append(invalid, ids[node])
		case node.SelfRecursive:
			recursive = append(recursive, ids[node])
		case node.Commented:
			commented = append(commented, ids[node])
		}
	})

	if len(missing)+len(invalid)+len(recursive)+len(commented) > 0 {
		sb.WriteString("\n    %% Status Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef missing fill:#fecaca,stroke:#dc2626,stroke-dasharray: 5 5,color:#000;\n")
		sb.WriteString("    classDef invalid fill:#fde68a,stroke:#d97706,color:#000;\n")
		sb.WriteString("    classDef recursive fill:#fca5a5,stroke:#b91c1c,color:#000;\n")
		sb.WriteString("    classDef commented fill:#e5e7eb,stroke:#6b7280,color:#000;\n")

		writeClassLines(&sb, "missing", missing)
		writeClassLines(&sb, "invalid", invalid)
		writeClassLines(&sb, "recursive", recursive)
		writeClassLines(&sb, "commented", commented)
	}

	return sb.String()
}

func writeClassLines(sb *strings.Builder, class string, ids []string) {
	for _, id := range ids {
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", id, class))
	}
}

func escapeMermaidLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
