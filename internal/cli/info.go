// internal/cli/info.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyready/pyready"
)

var infoCmd = &cobra.Command{
	Use:   "info [package]",
	Short: "Show information about a package",
	Long:  `Display importability and installed version for a single package.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	mgr, err := pyready.NewManager(config, logger)
	if err != nil {
		return err
	}

	// Use the configured import-name mapping when the package is one of
	// the required set; otherwise probe the distribution name directly.
	module := name
	for _, spec := range config.Packages {
		if strings.EqualFold(spec.Name, name) {
			module = spec.ImportName()
			break
		}
	}

	importable := mgr.Interpreter().CanImport(ctx, module)

	version := ""
	if pkgs, err := mgr.List(ctx); err == nil {
		for _, p := range pkgs {
			if strings.EqualFold(p.Name, name) {
				version = p.Version
				break
			}
		}
	}

	if !importable && version == "" {
		return fmt.Errorf("%w: %s", pyready.ErrPackageNotFound, name)
	}

	fmt.Printf("Package: %s\n", name)
	fmt.Printf("Module: %s\n", module)
	fmt.Printf("Importable: %t\n", importable)
	if version != "" {
		fmt.Printf("Version: %s\n", version)
		fmt.Printf("Backend: %s\n", mgr.InstallerName())
	}

	return nil
}
