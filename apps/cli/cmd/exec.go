package cmd

import (
	"errors"
	"os"
	"os/exec"

	"github.com/gvsoc/gvtest/packages/core/searchpath"
	"github.com/spf13/cobra"
)

var execDir string

var execCmd = &cobra.Command{
	Use:   "exec [--dir directory] [--] command [args...]",
	Short: "Run a command with the merged paths on PYTHONPATH",
	Long: `Resolve the configuration for a directory, extend PYTHONPATH with the
merged python_paths and run the command. The command inherits stdin, stdout
and stderr, and its exit status becomes the exit status of gvtest.

Examples:
  gvtest exec -- python -m pytest
  gvtest exec --dir ./tests/soc python run_tests.py`,
	Args: cobra.MinimumNArgs(1),
	RunE: execCommand,
}

func init() {
	execCmd.Flags().StringVarP(&execDir, "dir", "C", "", "Directory to resolve the configuration for (default: current directory)")
	execCmd.Flags().SetInterspersed(false)
}

func execCommand(cmd *cobra.Command, args []string) error {
	var loaderArgs []string
	if execDir != "" {
		loaderArgs = []string{execDir}
	}
	loader, err := newLoader(loaderArgs)
	if err != nil {
		return err
	}

	reg := searchpath.FromEnv(searchpath.EnvVar)
	if _, err := loader.LoadAndApply(reg); err != nil {
		return err
	}

	child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
	child.Env = reg.Environ(os.Environ())
	child.Stdin = cmd.InOrStdin()
	child.Stdout = cmd.OutOrStdout()
	child.Stderr = cmd.ErrOrStderr()

	logger.Debug("running command", "command", args, searchpath.EnvVar, reg.String())

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &childExitError{code: exitErr.ExitCode()}
		}
		return err
	}
	return nil
}
