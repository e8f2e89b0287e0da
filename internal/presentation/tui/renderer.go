package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// The graph command uses it to preview the Mermaid export in the terminal
// instead of dumping raw flowchart syntax.
func NewRenderer() func(string) (string, error) {
	// Initialize renderer with auto style detection (light/dark background)
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
