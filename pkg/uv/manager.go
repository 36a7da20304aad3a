// pkg/uv/manager.go
package uv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pyready/pyready/pkg/core"
)

const (
	// DefaultBinary is the uv executable name
	DefaultBinary = "uv"

	// DefaultTimeout bounds a single uv invocation
	DefaultTimeout = 10 * time.Minute
)

var commandContext = exec.CommandContext

// Config configures the uv installer
type Config struct {
	Binary  string        // uv executable (default: "uv")
	Python  string        // Interpreter whose environment uv targets
	Timeout time.Duration // Per-invocation timeout (default: DefaultTimeout)
	Stdout  io.Writer     // Where installer output goes (default: os.Stdout)
	Stderr  io.Writer     // Where installer errors go (default: os.Stderr)
	Logger  *slog.Logger  // Debug logging; nil disables
}

// PackageManager drives uv's pip-compatible interface.
type PackageManager struct {
	config *Config
}

// NewPackageManager creates a uv installer
func NewPackageManager(config *Config) *PackageManager {
	if config == nil {
		config = &Config{}
	}
	if config.Binary == "" {
		config.Binary = DefaultBinary
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	return &PackageManager{config: config}
}

// Name returns the backend name
func (m *PackageManager) Name() string {
	return "uv"
}

// IsAvailable reports whether the uv binary is on PATH
func (m *PackageManager) IsAvailable() bool {
	_, err := exec.LookPath(m.config.Binary)
	return err == nil
}

// Install installs a single distribution via "uv pip install"
func (m *PackageManager) Install(ctx context.Context, pkg string, opts *core.InstallOptions) error {
	if pkg == "" {
		return fmt.Errorf("package name is required")
	}
	if opts == nil {
		opts = &core.InstallOptions{}
	}

	spec := pkg
	if opts.Version != "" {
		spec = pkg + "==" + opts.Version
	}

	args := []string{"pip", "install"}
	if opts.Upgrade {
		args = append(args, "--upgrade")
	}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if m.config.Python != "" {
		args = append(args, "--python", m.config.Python)
	}
	args = append(args, spec)

	runCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	if m.config.Logger != nil {
		m.config.Logger.Debug("running uv pip install", "binary", m.config.Binary, "args", args)
	}

	var stderr bytes.Buffer
	cmd := commandContext(runCtx, m.config.Binary, args...)
	cmd.Stdout = m.config.Stdout
	cmd.Stderr = io.MultiWriter(m.config.Stderr, &stderr)

	if err := cmd.Run(); err != nil {
		detail := lastLine(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%w: uv pip install %s: %s", core.ErrInstallFailed, pkg, detail)
	}
	return nil
}

// List returns installed distributions via "uv pip list --format=json"
func (m *PackageManager) List(ctx context.Context) ([]core.Package, error) {
	runCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	args := []string{"pip", "list", "--format=json"}
	if m.config.Python != "" {
		args = append(args, "--python", m.config.Python)
	}

	cmd := commandContext(runCtx, m.config.Binary, args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("uv pip list: %w", err)
	}

	var entries []struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	}
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("parsing uv list output: %w", err)
	}

	packages := make([]core.Package, 0, len(entries))
	for _, e := range entries {
		packages = append(packages, core.Package{
			Name:    e.Name,
			Version: e.Version,
			Backend: "uv",
		})
	}
	return packages, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
