// pkg/platform/detect.go
package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/pyready/pyready/pkg/registry"
)

// Platform represents the detected system and its usable installers
type Platform struct {
	OS        string   // linux, darwin, windows
	Arch      string   // amd64, arm64, 386, arm
	Available []string // Usable installer backends
	Preferred string   // Preferred installer backend
}

// Detect probes which installer backends can operate against the given
// interpreter and picks a preferred one. pip wins whenever the interpreter
// can run it, matching what the original setup flow assumed.
func Detect(python string, logger *slog.Logger) (*Platform, error) {
	p := &Platform{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Available: []string{},
	}

	for _, name := range registry.Known() {
		installer, err := registry.Get(name, python, logger)
		if err != nil {
			continue
		}
		if installer.IsAvailable() {
			p.Available = append(p.Available, name)
		}
	}

	if len(p.Available) > 0 {
		p.Preferred = p.Available[0]
	}

	return p, nil
}

// String returns a string representation of the platform
func (p *Platform) String() string {
	return fmt.Sprintf("%s/%s (available: %v, preferred: %s)",
		p.OS, p.Arch, p.Available, p.Preferred)
}
