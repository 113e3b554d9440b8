package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, resetting flags left over from
// earlier runs since commands are package-level.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// project lays out:
//
//	root/gvtest.yaml        python_paths: [lib]
//	root/lib/
//	root/tests/gvtest.yaml  python_paths: [../shared, tools]
//	root/tests/tools/
func project(t *testing.T) (root, tests string) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	tests = filepath.Join(root, "tests")
	for _, dir := range []string{filepath.Join(root, "lib"), filepath.Join(tests, "tools")} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	writeConfig(t, root, "python_paths:\n  - lib\n")
	writeConfig(t, tests, "python_paths:\n  - ../shared\n  - tools\n")
	return root, tests
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gvtest.yaml"), []byte(content), 0o644))
}
