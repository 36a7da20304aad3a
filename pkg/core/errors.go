// pkg/core/errors.go
package core

import "errors"

var (
	// ErrInterpreterNotFound indicates no Python interpreter could be located
	ErrInterpreterNotFound = errors.New("python interpreter not found")

	// ErrInstallerNotAvailable indicates no usable installer backend exists
	ErrInstallerNotAvailable = errors.New("installer not available")

	// ErrInstallFailed indicates the installer reported non-success
	ErrInstallFailed = errors.New("package install failed")

	// ErrPackageNotFound indicates the package was not found
	ErrPackageNotFound = errors.New("package not found")
)
