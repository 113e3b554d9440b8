package cmd

import (
	"fmt"
	"strings"

	"github.com/gvsoc/gvtest/packages/core/searchpath"
	"github.com/spf13/cobra"
)

var envShell string

var envCmd = &cobra.Command{
	Use:   "env [directory]",
	Short: "Print a PYTHONPATH export including the merged paths",
	Long: `Seed a search path from the current PYTHONPATH, register the merged
python_paths into it and print a shell statement exporting the result.
Entries already on PYTHONPATH are not repeated.

Examples:
  eval "$(gvtest env)"
  gvtest env --shell fish | source`,
	Args: cobra.MaximumNArgs(1),
	RunE: envCommand,
}

func init() {
	envCmd.Flags().StringVar(&envShell, "shell", "sh", "Shell syntax to print (sh, fish)")
}

func envCommand(cmd *cobra.Command, args []string) error {
	if envShell != "sh" && envShell != "fish" {
		return usageErrorf("unknown shell %q (expected sh or fish)", envShell)
	}

	loader, err := newLoader(args)
	if err != nil {
		return err
	}

	reg := searchpath.FromEnv(searchpath.EnvVar)
	added, err := loader.LoadAndApply(reg)
	if err != nil {
		return err
	}

	switch envShell {
	case "fish":
		fmt.Fprintf(cmd.OutOrStdout(), "set -gx %s %s\n", searchpath.EnvVar, fishQuote(reg.String()))
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", searchpath.EnvVar, shQuote(reg.String()))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "added %d path(s) to %s\n", added, searchpath.EnvVar)
	return nil
}

func shQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func fishQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "'", `\'`)
	return "'" + r.Replace(s) + "'"
}
