package cmd

import (
	"github.com/gvsoc/gvtest/packages/output"
	"github.com/spf13/cobra"
)

var discoverOutput string

var discoverCmd = &cobra.Command{
	Use:   "discover [directory]",
	Short: "List the config files that apply to a directory",
	Long: `List the gvtest.yaml files found between the filesystem root and the
directory, root first. Files are not loaded.

Examples:
  gvtest discover
  gvtest discover ./tests --output plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: discoverCommand,
}

func init() {
	discoverCmd.Flags().StringVarP(&discoverOutput, "output", "o", "console", "Output format (console, json, plain)")
}

func discoverCommand(cmd *cobra.Command, args []string) error {
	formatter, err := output.New(discoverOutput, cmd.OutOrStdout(), settings.NoColor)
	if err != nil {
		return &usageError{err: err}
	}

	loader, err := newLoader(args)
	if err != nil {
		return err
	}

	files := configPaths(loader.Discover())
	return formatter.FormatFiles(output.NewReport(loader.StartDir(), files, nil))
}
