// pkg/interp/interp.go
package interp

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/pyready/pyready/pkg/core"
)

var commandContext = exec.CommandContext

// Interpreter is a resolved Python executable.
type Interpreter struct {
	Path string // Absolute path to the executable
}

// Find resolves a Python interpreter. An explicit name or path wins;
// otherwise the usual candidates are scanned on PATH.
func Find(explicit string) (*Interpreter, error) {
	if explicit != "" {
		path, err := exec.LookPath(explicit)
		if err != nil {
			return nil, fmt.Errorf("%w: %q not found on PATH", core.ErrInterpreterNotFound, explicit)
		}
		return &Interpreter{Path: path}, nil
	}

	candidates := candidateNames()
	for _, name := range candidates {
		if path, err := exec.LookPath(name); err == nil {
			return &Interpreter{Path: path}, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", core.ErrInterpreterNotFound, strings.Join(candidates, ", "))
}

// candidateNames returns interpreter names to try, in preference order.
func candidateNames() []string {
	if runtime.GOOS == "windows" {
		return []string{"py", "python", "python3"}
	}
	return []string{"python3", "python"}
}

// Version runs the interpreter's version query and returns the version
// string (e.g. "3.11.4"). A failure here means the interpreter is unusable.
func (i *Interpreter) Version(ctx context.Context) (string, error) {
	cmd := commandContext(ctx, i.Path, "--version")
	// CPython 2 and early 3.x printed the version to stderr.
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s --version: %v", core.ErrInterpreterNotFound, i.Path, err)
	}
	return parseVersion(string(output)), nil
}

// CanImport reports whether the named module loads in a throwaway
// interpreter subprocess.
func (i *Interpreter) CanImport(ctx context.Context, module string) bool {
	cmd := commandContext(ctx, i.Path, "-c", "import "+module)
	return cmd.Run() == nil
}

// parseVersion extracts the numeric version from "Python X.Y.Z" output.
func parseVersion(output string) string {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) >= 2 && strings.EqualFold(fields[0], "python") {
		return fields[1]
	}
	return strings.TrimSpace(output)
}
