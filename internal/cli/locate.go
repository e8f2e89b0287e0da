package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rolfedh/adoctree/internal/config"
	"github.com/rolfedh/adoctree/pkg/domain"
)

// DefaultDocument locates the starting document for a directory using
// standard CLI conventions: a well-known root name first, then a single
// unambiguous file by extension.
func DefaultDocument(dir string, cfg config.Config) (string, error) {
	for _, name := range cfg.RootCandidates {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("scanning %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasDocExtension(entry.Name(), cfg.Extensions) {
			matches = append(matches, entry.Name())
		}
	}

	switch len(matches) {
	case 1:
		return filepath.Join(dir, matches[0]), nil
	case 0:
		return "", fmt.Errorf("%w in %s", domain.ErrNoDocument, dir)
	default:
		return "", fmt.Errorf("%w in %s: %s are ambiguous", domain.ErrNoDocument, dir, strings.Join(matches, ", "))
	}
}

// ResolveStartingDocument picks the document for a single optional path
// argument: the argument itself, its guessed root when it names a
// directory, or the current directory's root document when empty.
func ResolveStartingDocument(arg string, cfg config.Config) (string, error) {
	if arg == "" {
		return DefaultDocument(".", cfg)
	}
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return DefaultDocument(arg, cfg)
	}
	return arg, nil
}

// hasDocExtension reports whether name carries one of the configured
// document extensions.
func hasDocExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
