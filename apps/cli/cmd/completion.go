package cmd

import (
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

// completionWriters generates the completion script of each supported shell.
var completionWriters = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

func completionShells() []string {
	shells := make([]string, 0, len(completionWriters))
	for name := range completionWriters {
		shells = append(shells, name)
	}
	slices.Sort(shells)
	return shells
}

var completionCmd = &cobra.Command{
	Use:   "completion <shell>",
	Short: "Generate shell completion scripts",
	Long: `Print the completion script for one of: ` + strings.Join(completionShells(), ", ") + `.

Completion pairs well with env, which is usually sourced from the same rc file:

  source <(gvtest completion bash)
  eval "$(gvtest env)"

  gvtest completion zsh > "${fpath[1]}/_gvtest"
  gvtest completion fish > ~/.config/fish/completions/gvtest.fish`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells(),
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return completionWriters[args[0]](cmd.Root(), cmd.OutOrStdout())
	},
}
