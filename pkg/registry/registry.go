// pkg/registry/registry.go
package registry

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pyready/pyready/pkg/conda"
	"github.com/pyready/pyready/pkg/core"
	"github.com/pyready/pyready/pkg/pip"
	"github.com/pyready/pyready/pkg/uv"
)

// Known returns the recognized backend names in preference order.
func Known() []string {
	return []string{"pip", "uv", "conda"}
}

// Get constructs an installer backend by name. The interpreter path is
// required for backends that operate through or against a specific
// interpreter (pip, uv).
func Get(name, python string, logger *slog.Logger) (core.Installer, error) {
	switch name {
	case "pip":
		return pip.NewPackageManager(&pip.Config{Python: python, Logger: logger}), nil
	case "uv":
		return uv.NewPackageManager(&uv.Config{Python: python, Logger: logger}), nil
	case "conda":
		return conda.NewPackageManager(&conda.Config{Logger: logger}), nil
	default:
		return nil, fmt.Errorf("unknown installer %q (known: %s)", name, strings.Join(Known(), ", "))
	}
}
