// internal/cli/root.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pyready/pyready/pkg/core"
)

var (
	cfgFile       string
	pythonFlag    string
	installerFlag string
	debug         bool
	config        *core.Config
	logger        *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pyready",
	Short: "Python environment readiness checker",
	Long: `pyready - Python environment readiness checker

Verifies that a Python interpreter is installed and that the required
packages are importable, installing any that are missing through pip,
uv, or conda.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var ee *exitCodeError
		if errors.As(err, &ee) {
			if ee.err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", ee.err)
			}
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pyready/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&pythonFlag, "python", "", "explicit Python interpreter to use")
	rootCmd.PersistentFlags().StringVar(&installerFlag, "installer", "", "installer backend to use (pip, uv, conda)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(ensureCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if pythonFlag != "" {
		config.Python = pythonFlag
	}
	if installerFlag != "" {
		config.Installer = installerFlag
	}
	if debug {
		config.Debug = true
	}

	level := slog.LevelWarn
	if config.Debug {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// exitCodeError carries a specific process exit code out of a command.
// A nil err means the command already printed its diagnostics.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit code %d", e.code)
	}
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}
