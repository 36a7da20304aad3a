// pkg/conda/manager.go
package conda

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

// PackageManager drives the conda command-line tool.
type PackageManager struct {
	config *Config
}

// NewPackageManager creates a conda installer
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
	return "conda"
}

// IsAvailable reports whether the conda binary is on PATH
func (m *PackageManager) IsAvailable() bool {
	_, err := exec.LookPath(m.config.Binary)
	return err == nil
}

// Install installs a single package into the active conda environment
func (m *PackageManager) Install(ctx context.Context, pkg string, opts *core.InstallOptions) error {
	if pkg == "" {
		return fmt.Errorf("package name is required")
	}
	if opts == nil {
		opts = &core.InstallOptions{}
	}

	spec := pkg
	if opts.Version != "" {
		spec = pkg + "=" + opts.Version
	}

	args := []string{"install", "--yes"}
	if opts.Quiet {
		args = append(args, "--quiet")
	}
	if m.config.Channel != "" {
		args = append(args, "--channel", m.config.Channel)
	}
	args = append(args, spec)

	runCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	if m.config.Logger != nil {
		m.config.Logger.Debug("running conda install", "binary", m.config.Binary, "args", args)
	}

	var stderr bytes.Buffer
	cmd := commandContext(runCtx, m.config.Binary, args...)
	cmd.Stdout = m.config.Stdout
	cmd.Stderr = io.MultiWriter(m.config.Stderr, &stderr)

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if idx := strings.LastIndexByte(detail, '\n'); idx >= 0 {
			detail = strings.TrimSpace(detail[idx+1:])
		}
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%w: conda install %s: %s", core.ErrInstallFailed, pkg, detail)
	}
	return nil
}

// List returns installed packages via "conda list --json"
func (m *PackageManager) List(ctx context.Context) ([]core.Package, error) {
	runCtx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()

	cmd := commandContext(runCtx, m.config.Binary, "list", "--json")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("conda list: %w", err)
	}

	var entries []listEntry
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("parsing conda list output: %w", err)
	}

	packages := make([]core.Package, 0, len(entries))
	for _, e := range entries {
		packages = append(packages, core.Package{
			Name:    e.Name,
			Version: e.Version,
			Backend: "conda",
		})
	}
	return packages, nil
}
