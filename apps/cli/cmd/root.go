package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/gvsoc/gvtest/packages/core/config"
	"github.com/gvsoc/gvtest/packages/logging"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	settings Settings
	logger   = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "gvtest",
	Short: "Hierarchical gvtest.yaml discovery for test runs",
	Long: `gvtest finds the gvtest.yaml files between a directory and the
filesystem root, merges their python_paths from the root down and makes the
result available to test commands through PYTHONPATH.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

// reportError prints err unless it only carries a child exit status, and
// returns the process exit code for it.
func reportError(w io.Writer, err error) int {
	var childErr *childExitError
	if !errors.As(err, &childErr) {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return exitCode(err)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String(flagLogLevel, defaultLogLevel, "Log level (debug, info, warn, error)")
	flags.String(flagLogFormat, defaultLogFormat, "Log format (text, json)")
	flags.Bool(flagNoColor, false, "Disable colored output")
	flags.String(flagConfigName, config.DefaultFilename, "Config file name looked up in each directory")

	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd.Flags())
	if err != nil {
		return err
	}
	settings = s

	if settings.NoColor {
		color.NoColor = true
	}

	logger = logging.New(logging.Options{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)
	return nil
}

// newLoader builds a Loader for the optional directory argument.
func newLoader(args []string) (*config.Loader, error) {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	return config.NewLoader(dir,
		config.WithLogger(logger),
		config.WithFilename(settings.ConfigName),
	)
}

func configPaths(files []config.ConfigFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	return paths
}
