// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pyready/pyready"
	"github.com/pyready/pyready/pkg/platform"
	"github.com/pyready/pyready/pkg/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available installer backends",
	Long:  `List all installer backends usable with the resolved interpreter.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := pyready.NewManager(config, logger)
	if err != nil {
		return err
	}

	plat, err := platform.Detect(mgr.Interpreter().Path, logger)
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	fmt.Printf("Platform: %s/%s\n\n", plat.OS, plat.Arch)
	fmt.Printf("Available installers:\n")
	for _, name := range plat.Available {
		marker := " "
		if name == plat.Preferred {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, name)
	}

	if plat.Preferred != "" {
		fmt.Printf("\n* = preferred installer\n")
	}

	fmt.Printf("\nRegistered installers: %v\n", registry.Known())

	return nil
}
