// Package tree renders a resolved include tree as indented, annotated text.
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rolfedh/adoctree/pkg/domain"
)

// indentWidth is the column shift per nesting level.
const indentWidth = 4

// conditionMarker prefixes the annotation line listing the conditional
// directives that enclose a node.
const conditionMarker = "?? "

// tagColors maps each status tag to its ANSI palette entry.
var tagColors = map[string]string{
	domain.TagCommented:     "8",
	domain.TagSelfRecursive: "1",
	domain.TagInvalidPath:   "3",
	domain.TagMissing:       "9",
}

// Options control how a resolved tree is rendered.
type Options struct {
	// ShowCommented renders nodes that sit inside comments. Suppression is
	// strictly per node: children render regardless, at their own depth.
	ShowCommented bool

	// Color styles status tags and condition annotations with the
	// terminal's color profile. Off, output is plain text.
	Color bool
}

// Render writes the annotated include tree to w, one node per line,
// depth-first in discovery order. Each line carries the node's status tags
// (commented, self-recursive, invalid path, missing, in that order), a
// separator space when any tag is set, and the target name as written in
// the source. Nodes enclosed by conditional directives get one extra
// annotation line beneath them at the next indent level.
func Render(w io.Writer, root *domain.Node, opts Options) {
	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.ColorProfile()
	}

	root.Walk(func(node *domain.Node, depth int) {
		if node.Commented && !opts.ShowCommented {
			return
		}

		indent := strings.Repeat(" ", depth*indentWidth)
		fmt.Fprintf(w, "%s%s%s\n", indent, renderTags(profile, node), node.Name)

		if conds := node.ActiveConditions(); len(conds) > 0 {
			line := conditionMarker + strings.Join(conds, " ")
			if opts.Color {
				line = termenv.String(line).Foreground(profile.Color("6")).String()
			}
			fmt.Fprintf(w, "%s%s\n", indent+strings.Repeat(" ", indentWidth), line)
		}
	})
}

// renderTags returns the node's status tags followed by a single separator
// space, or the empty string when no flag is set.
func renderTags(profile termenv.Profile, node *domain.Node) string {
	tags := node.Tags()
	if tags == "" {
		return ""
	}
	if profile == termenv.Ascii {
		return tags + " "
	}

	var sb strings.Builder
	for _, t := range []struct {
		set bool
		tag string
	}{
		{node.Commented, domain.TagCommented},
		{node.SelfRecursive, domain.TagSelfRecursive},
		{node.InvalidPath, domain.TagInvalidPath},
		{node.Missing, domain.TagMissing},
	} {
		if !t.set {
			continue
		}
		sb.WriteString(termenv.String(t.tag).Foreground(profile.Color(tagColors[t.tag])).String())
	}
	sb.WriteString(" ")
	return sb.String()
}
