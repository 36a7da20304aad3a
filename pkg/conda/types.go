// pkg/conda/types.go
package conda

import (
	"io"
	"log/slog"
	"time"
)

// Config configures the conda installer
type Config struct {
	Binary  string        // Conda executable (default: "conda")
	Channel string        // Extra channel passed as --channel
	Timeout time.Duration // Per-invocation timeout (default: DefaultTimeout)
	Stdout  io.Writer     // Where installer output goes (default: os.Stdout)
	Stderr  io.Writer     // Where installer errors go (default: os.Stderr)
	Logger  *slog.Logger  // Debug logging; nil disables
}

// listEntry mirrors one element of "conda list --json" output
type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
