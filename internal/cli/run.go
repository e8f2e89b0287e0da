package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/rolfedh/adoctree"
	"github.com/rolfedh/adoctree/internal/config"
	"github.com/rolfedh/adoctree/internal/presentation/tree"
)

// ListingOptions contains all the configuration for the tree listing.
type ListingOptions struct {
	Args          []string
	ShowCommented bool
	Color         bool
	Debug         bool
	Config        config.Config
}

// RunListing expands the positional arguments and prints one annotated
// include tree per resolved starting document. With no arguments it lists
// the default document of the current directory, without a header.
func RunListing(w io.Writer, opts ListingOptions) error {
	logger := createLogger(opts.Debug)

	if len(opts.Args) == 0 {
		doc, err := DefaultDocument(".", opts.Config)
		if err != nil {
			return err
		}
		return listDocument(w, doc, opts, logger)
	}

	printed := 0
	for _, arg := range opts.Args {
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return fmt.Errorf("invalid glob pattern %q: %w", arg, err)
		}
		sort.Strings(matches)

		// The glob cleans a trailing separator away, so remember it from
		// the raw argument. A directory named with one degrades politely:
		// a failed guess reports and moves on instead of aborting the run.
		soft := strings.HasSuffix(arg, "/") || strings.HasSuffix(arg, string(os.PathSeparator))

		for _, match := range matches {
			if printed > 0 {
				fmt.Fprintln(w)
			}
			printed++
			fmt.Fprintf(w, "Listing %s:\n", match)

			doc := match
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				doc, err = DefaultDocument(match, opts.Config)
				if err != nil {
					if soft {
						fmt.Fprintln(w, err)
						continue
					}
					return err
				}
			}

			if err := listDocument(w, doc, opts, logger); err != nil {
				return err
			}
		}
	}

	return nil
}

// listDocument renders the include tree for a single starting document.
func listDocument(w io.Writer, path string, opts ListingOptions, logger *slog.Logger) error {
	eng, err := adoctree.New(path,
		adoctree.WithShowCommented(opts.ShowCommented),
		adoctree.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	tree.Render(w, eng.Resolve(), tree.Options{
		ShowCommented: opts.ShowCommented,
		Color:         opts.Color,
	})
	return nil
}
