// internal/cli/ensure.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyready/pyready"
	"github.com/pyready/pyready/pkg/checker"
)

var ensurePause bool

var ensureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Verify the interpreter and install missing packages",
	Long: `Verify that the Python interpreter is present and that every required
package is importable, installing any that are missing. The run stops at
the first failure.

Exit codes: 0 ready, 1 no interpreter, 2 install failed, 3 no installer.`,
	Args: cobra.NoArgs,
	RunE: runEnsure,
}

func init() {
	ensureCmd.Flags().BoolVar(&ensurePause, "pause", false, "wait for Enter before exiting (for launcher use)")
}

func runEnsure(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ensurePause {
		defer waitForEnter()
	}

	mgr, err := pyready.NewManager(config, logger)
	if err != nil {
		if errors.Is(err, pyready.ErrInterpreterNotFound) {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
			return &exitCodeError{code: checker.OutcomeNoInterpreter.ExitCode()}
		}
		return err
	}

	events := pyready.Events{
		InterpreterReady: func(version string) {
			fmt.Printf("Using Python %s (%s)\n\n", version, mgr.Interpreter().Path)
		},
		Present: func(pkg string) {
			fmt.Printf("%s already installed\n", pkg)
		},
		Installing: func(pkg string) {
			fmt.Printf("installing %s...\n", pkg)
		},
		Installed: func(pkg string) {
			fmt.Printf("✓ Successfully installed %s\n", pkg)
		},
		Failed: func(pkg string, err error) {
			fmt.Fprintf(os.Stderr, "✗ Failed to install %s: %v\n", pkg, err)
		},
	}

	report := mgr.Ensure(ctx, events)
	switch report.Outcome {
	case pyready.OutcomeReady:
		fmt.Println("\nAll dependencies are ready.")
		return nil
	case pyready.OutcomeNoInterpreter:
		fmt.Fprintf(os.Stderr, "✗ %v\n", report.Err)
	}
	return &exitCodeError{code: report.Outcome.ExitCode()}
}

func waitForEnter() {
	fmt.Print("Press Enter to exit...")
	reader := bufio.NewReader(os.Stdin)
	_, _ = reader.ReadString('\n')
}
