// pkg/pip/types.go
package pip

import (
	"io"
	"log/slog"
	"time"
)

// Config configures the pip installer
type Config struct {
	Python   string        // Interpreter used to run "-m pip" (required)
	IndexURL string        // Package index; empty means pip's default
	Timeout  time.Duration // Per-invocation timeout (default: DefaultTimeout)
	Stdout   io.Writer     // Where installer output goes (default: os.Stdout)
	Stderr   io.Writer     // Where installer errors go (default: os.Stderr)
	Logger   *slog.Logger  // Debug logging; nil disables
}

// listEntry mirrors one element of "pip list --format=json" output
type listEntry struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
