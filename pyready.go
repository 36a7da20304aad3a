// pyready.go
package pyready

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pyready/pyready/pkg/checker"
	"github.com/pyready/pyready/pkg/core"
	"github.com/pyready/pyready/pkg/interp"
	"github.com/pyready/pyready/pkg/platform"
	"github.com/pyready/pyready/pkg/registry"
)

// Re-export core types for convenience
type (
	Config         = core.Config
	PackageSpec    = core.PackageSpec
	Package        = core.Package
	Status         = core.Status
	InstallOptions = core.InstallOptions
	Installer      = core.Installer
	Outcome        = checker.Outcome
	Report         = checker.Report
	Events         = checker.Events
)

// Re-export checker outcomes
const (
	OutcomeReady         = checker.OutcomeReady
	OutcomeNoInterpreter = checker.OutcomeNoInterpreter
	OutcomeInstallFailed = checker.OutcomeInstallFailed
	OutcomeNoInstaller   = checker.OutcomeNoInstaller
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager ties an interpreter and an installer backend together.
type Manager struct {
	config    *core.Config
	interp    *interp.Interpreter
	installer core.Installer
	logger    *slog.Logger
}

// NewManager resolves the interpreter and the installer backend. A missing
// interpreter is fatal here; a missing installer is not, because a run where
// every package is already importable never needs one.
func NewManager(config *core.Config, logger *slog.Logger) (*Manager, error) {
	if config == nil {
		config = core.DefaultConfig()
	}

	py, err := interp.Find(config.Python)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Debug("resolved interpreter", "path", py.Path)
	}

	var installer core.Installer
	if config.Installer != "" {
		installer, err = registry.Get(config.Installer, py.Path, logger)
		if err != nil {
			return nil, err
		}
		if !installer.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", core.ErrInstallerNotAvailable, config.Installer)
		}
	} else {
		plat, err := platform.Detect(py.Path, logger)
		if err != nil {
			return nil, fmt.Errorf("detecting platform: %w", err)
		}
		if logger != nil {
			logger.Debug("detected platform", "platform", plat.String())
		}
		if plat.Preferred != "" {
			installer, err = registry.Get(plat.Preferred, py.Path, logger)
			if err != nil {
				return nil, err
			}
		}
	}

	return &Manager{
		config:    config,
		interp:    py,
		installer: installer,
		logger:    logger,
	}, nil
}

// Interpreter returns the resolved interpreter.
func (m *Manager) Interpreter() *interp.Interpreter {
	return m.interp
}

// InstallerName returns the active backend name, or "" when none resolved.
func (m *Manager) InstallerName() string {
	if m.installer == nil {
		return ""
	}
	return m.installer.Name()
}

// Ensure runs the readiness scan, installing missing packages.
func (m *Manager) Ensure(ctx context.Context, events Events) Report {
	c := checker.New(m.interp, m.installer, m.config.Packages, events)
	return c.Run(ctx)
}

// Status probes every configured package without installing anything.
func (m *Manager) Status(ctx context.Context) ([]core.Status, error) {
	version, err := m.interp.Version(ctx)
	if err != nil {
		return nil, err
	}
	if m.logger != nil {
		m.logger.Debug("interpreter version", "version", version)
	}

	statuses := make([]core.Status, 0, len(m.config.Packages))
	for _, spec := range m.config.Packages {
		statuses = append(statuses, core.Status{
			Name:    spec.Name,
			Module:  spec.ImportName(),
			Present: m.interp.CanImport(ctx, spec.ImportName()),
		})
	}
	return statuses, nil
}

// Install installs the named packages through the resolved backend,
// stopping at the first failure.
func (m *Manager) Install(ctx context.Context, pkgs []string, opts *InstallOptions) error {
	if m.installer == nil {
		return core.ErrInstallerNotAvailable
	}
	for _, pkg := range pkgs {
		if err := m.installer.Install(ctx, pkg, opts); err != nil {
			return &Error{Op: "install", Package: pkg, Err: err}
		}
	}
	return nil
}

// List returns the installed distributions reported by the backend.
func (m *Manager) List(ctx context.Context) ([]core.Package, error) {
	if m.installer == nil {
		return nil, core.ErrInstallerNotAvailable
	}
	return m.installer.List(ctx)
}
