// pkg/conda/constants.go
package conda

import "time"

const (
	// DefaultBinary is the conda executable name
	DefaultBinary = "conda"

	// DefaultTimeout bounds a single conda invocation. Solver runs are slow.
	DefaultTimeout = 20 * time.Minute
)
