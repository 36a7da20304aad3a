// pkg/core/interface.go
package core

import "context"

// Installer defines the common interface for all package installer backends
type Installer interface {
	// Name returns the backend name (e.g., "pip", "conda")
	Name() string

	// Install installs a package by distribution name
	Install(ctx context.Context, pkg string, opts *InstallOptions) error

	// List lists installed distributions (not all backends support this)
	List(ctx context.Context) ([]Package, error)

	// IsAvailable checks if this backend is usable on the system
	IsAvailable() bool
}

// InstallOptions configures package installation
type InstallOptions struct {
	Version string // Specific version to install (pip pins as name==version)
	Upgrade bool   // Upgrade if already installed
	Quiet   bool   // Suppress installer console output
}
