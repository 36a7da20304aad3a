// pkg/pip/manager.go
package pip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pyready/pyready/pkg/core"
)

var commandContext = exec.CommandContext

// PackageManager drives pip through the interpreter's "-m pip" entry point.
type PackageManager struct {
	config *Config
}

// NewPackageManager creates a pip installer bound to an interpreter
func NewPackageManager(config *Config) *PackageManager {
	if config == nil {
		config = &Config{}
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
	return "pip"
}

// IsAvailable reports whether the interpreter can run pip as a module
func (m *PackageManager) IsAvailable() bool {
	if m.config.Python == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), availabilityTimeout)
	defer cancel()

	cmd := commandContext(ctx, m.config.Python, "-m", "pip", "--version")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run() == nil
}

// Install installs a single distribution from the package index. The
// installer's own output is streamed to the console; the trailing stderr
// line is kept for the failure diagnostic.
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

	args := []string{"-m", "pip", "install"}
	if opts.Upgrade {
		args = append(args, "--upgrade")
	}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if m.config.IndexURL != "" {
		args = append(args, "--index-url", m.config.IndexURL)
	}
	args = append(args, spec)

	runCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	if m.config.Logger != nil {
		m.config.Logger.Debug("running pip install", "python", m.config.Python, "args", args)
	}

	var stderr bytes.Buffer
	cmd := commandContext(runCtx, m.config.Python, args...)
	cmd.Stdout = m.config.Stdout
	cmd.Stderr = io.MultiWriter(m.config.Stderr, &stderr)

	if err := cmd.Run(); err != nil {
		detail := lastLine(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%w: pip install %s: %s", core.ErrInstallFailed, pkg, detail)
	}
	return nil
}

// List returns installed distributions via "pip list --format=json"
func (m *PackageManager) List(ctx context.Context) ([]core.Package, error) {
	runCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	cmd := commandContext(runCtx, m.config.Python, "-m", "pip", "list", "--format=json")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pip list: %w", err)
	}

	var entries []listEntry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("parsing pip list output: %w", err)
	}

	packages := make([]core.Package, 0, len(entries))
	for _, e := range entries {
		packages = append(packages, core.Package{
			Name:    e.Name,
			Version: e.Version,
			Backend: "pip",
		})
	}
	return packages, nil
}

// lastLine returns the final non-empty line of s.
func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
