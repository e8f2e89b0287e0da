package cli

import (
	"github.com/rolfedh/adoctree"
	"github.com/rolfedh/adoctree/internal/config"
	"github.com/rolfedh/adoctree/internal/validator"
)

// CheckOptions contains all the configuration for the consistency check.
type CheckOptions struct {
	Arg           string
	ShowCommented bool
	Debug         bool
	Config        config.Config
}

// RunCheck resolves the starting document and returns an error listing
// every broken reference in its include tree. A directory argument is
// checked from its root document, an empty argument from the current
// directory's.
func RunCheck(opts CheckOptions) error {
	logger := createLogger(opts.Debug)

	doc, err := ResolveStartingDocument(opts.Arg, opts.Config)
	if err != nil {
		return err
	}

	eng, err := adoctree.New(doc,
		adoctree.WithShowCommented(opts.ShowCommented),
		adoctree.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	return validator.CheckTree(eng.Resolve(), opts.ShowCommented)
}
