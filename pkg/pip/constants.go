// pkg/pip/constants.go
package pip

import "time"

const (
	// DefaultIndexURL is the standard Python Package Index
	DefaultIndexURL = "https://pypi.org/simple"

	// DefaultTimeout bounds a single pip invocation
	DefaultTimeout = 10 * time.Minute

	// availabilityTimeout bounds the "-m pip --version" probe
	availabilityTimeout = 15 * time.Second
)
