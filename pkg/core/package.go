// pkg/core/package.go
package core

// PackageSpec names a required package. Module is the import name used for
// the presence probe when it differs from the distribution name (the pyqt5
// distribution installs the PyQt5 module).
type PackageSpec struct {
	Name   string `yaml:"name"`
	Module string `yaml:"module,omitempty"`
}

// ImportName returns the module name used for the import probe.
func (p PackageSpec) ImportName() string {
	if p.Module != "" {
		return p.Module
	}
	return p.Name
}

// Package represents an installed distribution reported by an installer.
type Package struct {
	Name    string // Distribution name
	Version string // Installed version
	Backend string // Which installer reported it
}

// Status is the per-package result of a readiness scan.
type Status struct {
	Name      string // Distribution name
	Module    string // Import name probed
	Present   bool   // Importable before any install
	Installed bool   // Installed during this run
	Detail    string // Diagnostic text for failures
}

// DefaultPackages returns the compiled-in requirement list in scan order.
func DefaultPackages() []PackageSpec {
	return []PackageSpec{
		{Name: "numpy"},
		{Name: "pandas"},
		{Name: "matplotlib"},
		{Name: "pyqt5", Module: "PyQt5"},
		{Name: "openpyxl"},
	}
}
