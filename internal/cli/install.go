// internal/cli/install.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyready/pyready"
	"github.com/pyready/pyready/pkg/checker"
)

var (
	installVersion string
	installUpgrade bool
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install one or more packages",
	Long: `Install packages through the configured or auto-detected installer.

Examples:
  pyready install scipy
  pyready install numpy --version=1.26.4
  pyready install pandas --installer=conda`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installVersion, "version", "", "specific version to install")
	installCmd.Flags().BoolVar(&installUpgrade, "upgrade", false, "upgrade if already installed")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mgr, err := pyready.NewManager(config, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Using installer: %s\n", mgr.InstallerName())

	opts := &pyready.InstallOptions{
		Version: installVersion,
		Upgrade: installUpgrade,
	}

	// One failure aborts the rest, matching the ensure policy.
	for _, pkg := range args {
		fmt.Printf("\nInstalling %s...\n", pkg)
		if err := mgr.Install(ctx, []string{pkg}, opts); err != nil {
			fmt.Fprintf(os.Stderr, "✗ Failed to install %s: %v\n", pkg, err)
			return &exitCodeError{code: checker.OutcomeInstallFailed.ExitCode()}
		}
		fmt.Printf("✓ Successfully installed %s\n", pkg)
	}

	return nil
}
