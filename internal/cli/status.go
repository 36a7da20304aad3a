// internal/cli/status.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pyready/pyready"
)

var statusInstalled bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show interpreter and package availability",
	Long:  `Probe every required package and render the results without installing anything.`,
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusInstalled, "installed", false, "include installed versions from the backend")
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := pyready.NewManager(config, logger)
	if err != nil {
		return err
	}

	version, err := mgr.Interpreter().Version(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Python %s (%s)\n", version, mgr.Interpreter().Path)
	if name := mgr.InstallerName(); name != "" {
		fmt.Printf("Installer: %s\n", name)
	} else {
		fmt.Println("Installer: none available")
	}
	fmt.Println()

	statuses, err := mgr.Status(ctx)
	if err != nil {
		return err
	}

	versions := map[string]string{}
	if statusInstalled {
		pkgs, err := mgr.List(ctx)
		if err != nil {
			return fmt.Errorf("listing installed packages: %w", err)
		}
		for _, p := range pkgs {
			versions[strings.ToLower(p.Name)] = p.Version
		}
	}

	headers := []string{"Package", "Module", "Status"}
	if statusInstalled {
		headers = append(headers, "Version")
	}

	rows := make([][]string, 0, len(statuses))
	missing := 0
	for _, s := range statuses {
		state := "ok"
		if !s.Present {
			state = "missing"
			missing++
		}
		row := []string{s.Name, s.Module, state}
		if statusInstalled {
			row = append(row, versions[strings.ToLower(s.Name)])
		}
		rows = append(rows, row)
	}

	fmt.Println(renderTable(headers, rows))

	if missing > 0 {
		fmt.Printf("\n%d package(s) missing. Run 'pyready ensure' to install them.\n", missing)
	}
	return nil
}
