package cmd

import (
	"github.com/gvsoc/gvtest/packages/output"
	"github.com/spf13/cobra"
)

var pathsOutput string

var pathsCmd = &cobra.Command{
	Use:   "paths [directory]",
	Short: "Print the merged python_paths for a directory",
	Long: `Discover every gvtest.yaml from the filesystem root down to the directory
(the current one by default), validate them and print the merged
python_paths in the order they would be registered.

Examples:
  gvtest paths
  gvtest paths ./tests/chips/soc --output json
  gvtest paths --output plain | xargs ls -d`,
	Args: cobra.MaximumNArgs(1),
	RunE: pathsCommand,
}

func init() {
	pathsCmd.Flags().StringVarP(&pathsOutput, "output", "o", "console", "Output format (console, json, plain)")
}

func pathsCommand(cmd *cobra.Command, args []string) error {
	formatter, err := output.New(pathsOutput, cmd.OutOrStdout(), settings.NoColor)
	if err != nil {
		return &usageError{err: err}
	}

	loader, err := newLoader(args)
	if err != nil {
		return err
	}

	paths, err := loader.GetPythonPaths()
	if err != nil {
		return err
	}

	report := output.NewReport(loader.StartDir(), configPaths(loader.ConfigFiles()), paths)
	return formatter.FormatPaths(report)
}
