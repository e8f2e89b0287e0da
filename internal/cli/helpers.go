package cli

import (
	"log/slog"

	"github.com/rolfedh/adoctree/internal/logging"
)

// createLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from the tree listing on Stdout).
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
