// errors.go
package pyready

import (
	"fmt"

	"github.com/pyready/pyready/pkg/core"
)

// Re-export sentinel errors so callers can match with errors.Is without
// importing pkg/core.
var (
	// ErrInterpreterNotFound indicates no Python interpreter could be located
	ErrInterpreterNotFound = core.ErrInterpreterNotFound

	// ErrInstallerNotAvailable indicates no usable installer backend exists
	ErrInstallerNotAvailable = core.ErrInstallerNotAvailable

	// ErrInstallFailed indicates the installer reported non-success
	ErrInstallFailed = core.ErrInstallFailed

	// ErrPackageNotFound indicates the package was not found
	ErrPackageNotFound = core.ErrPackageNotFound
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
