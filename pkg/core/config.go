// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds pyready configuration
type Config struct {
	Python    string        `yaml:"python"`    // Explicit interpreter path or name
	Installer string        `yaml:"installer"` // Backend override (pip, conda, uv)
	Packages  []PackageSpec `yaml:"packages"`  // Required packages in scan order
	Debug     bool          `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Python:    "", // Auto-detect
		Installer: "", // Auto-detect
		Packages:  DefaultPackages(),
		Debug:     false,
	}
}

// LoadConfig loads configuration from file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "pyready", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// An empty list means the file omitted packages, not "require nothing".
	if len(cfg.Packages) == 0 {
		cfg.Packages = DefaultPackages()
	}

	return &cfg, nil
}
