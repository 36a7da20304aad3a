// pkg/checker/checker.go

// Package checker implements the sequential readiness scan: verify the
// interpreter, then walk the package list in order, probing importability
// and installing whatever is missing. The first fatal condition aborts the
// whole run.
package checker

import (
	"context"
	"fmt"

	"github.com/pyready/pyready/pkg/core"
)

// Runtime is the interpreter surface the checker needs.
type Runtime interface {
	// Version runs the interpreter's version query
	Version(ctx context.Context) (string, error)

	// CanImport reports whether the module loads in a fresh subprocess
	CanImport(ctx context.Context, module string) bool
}

// Outcome is the terminal state of a run.
type Outcome int

const (
	// OutcomeReady means every package was present or freshly installed
	OutcomeReady Outcome = iota
	// OutcomeNoInterpreter means the interpreter could not be located or run
	OutcomeNoInterpreter
	// OutcomeInstallFailed means an install invocation reported non-success
	OutcomeInstallFailed
	// OutcomeNoInstaller means a package was missing and no backend can install it
	OutcomeNoInstaller
)

// String returns a short identifier for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeReady:
		return "ready"
	case OutcomeNoInterpreter:
		return "no_interpreter"
	case OutcomeInstallFailed:
		return "install_failed"
	case OutcomeNoInstaller:
		return "no_installer"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ExitCode maps the outcome to the process exit code.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeReady:
		return 0
	case OutcomeNoInterpreter:
		return 1
	case OutcomeInstallFailed:
		return 2
	case OutcomeNoInstaller:
		return 3
	default:
		return 1
	}
}

// Events receives progress callbacks during a run. The checker never prints;
// the caller owns all console output. Nil callbacks are skipped.
type Events struct {
	InterpreterReady func(version string)
	Checking         func(pkg string)
	Present          func(pkg string)
	Installing       func(pkg string)
	Installed        func(pkg string)
	Failed           func(pkg string, err error)
}

// Report is the result of a run.
type Report struct {
	Outcome  Outcome
	Version  string        // Interpreter version, when it was reachable
	Statuses []core.Status // Per-package rows, in scan order, up to the abort point
	Err      error         // The fatal error for non-ready outcomes
}

// Checker performs the readiness scan.
type Checker struct {
	runtime   Runtime
	installer core.Installer // may be nil; only fatal if a package is missing
	packages  []core.PackageSpec
	events    Events
}

// New creates a checker over the given interpreter runtime and installer.
func New(runtime Runtime, installer core.Installer, packages []core.PackageSpec, events Events) *Checker {
	return &Checker{
		runtime:   runtime,
		installer: installer,
		packages:  packages,
		events:    events,
	}
}

// Run executes the scan and returns the terminal outcome. Packages are
// visited strictly in declaration order; a fatal condition stops the scan
// before any later package is touched. A freshly installed package is not
// re-probed in the same run.
func (c *Checker) Run(ctx context.Context) Report {
	if c.runtime == nil {
		return Report{
			Outcome: OutcomeNoInterpreter,
			Err:     core.ErrInterpreterNotFound,
		}
	}

	version, err := c.runtime.Version(ctx)
	if err != nil {
		return Report{
			Outcome: OutcomeNoInterpreter,
			Err:     err,
		}
	}
	c.emit(c.events.InterpreterReady, version)

	report := Report{Version: version, Statuses: make([]core.Status, 0, len(c.packages))}

	for _, spec := range c.packages {
		status := core.Status{Name: spec.Name, Module: spec.ImportName()}
		c.emit(c.events.Checking, spec.Name)

		if c.runtime.CanImport(ctx, spec.ImportName()) {
			status.Present = true
			report.Statuses = append(report.Statuses, status)
			c.emit(c.events.Present, spec.Name)
			continue
		}

		if c.installer == nil {
			err := fmt.Errorf("%w: cannot install %s", core.ErrInstallerNotAvailable, spec.Name)
			status.Detail = err.Error()
			report.Statuses = append(report.Statuses, status)
			if c.events.Failed != nil {
				c.events.Failed(spec.Name, err)
			}
			report.Outcome = OutcomeNoInstaller
			report.Err = err
			return report
		}

		c.emit(c.events.Installing, spec.Name)
		if err := c.installer.Install(ctx, spec.Name, nil); err != nil {
			status.Detail = err.Error()
			report.Statuses = append(report.Statuses, status)
			if c.events.Failed != nil {
				c.events.Failed(spec.Name, err)
			}
			report.Outcome = OutcomeInstallFailed
			report.Err = err
			return report
		}

		status.Present = true
		status.Installed = true
		report.Statuses = append(report.Statuses, status)
		c.emit(c.events.Installed, spec.Name)
	}

	report.Outcome = OutcomeReady
	return report
}

func (c *Checker) emit(fn func(string), arg string) {
	if fn != nil {
		fn(arg)
	}
}
