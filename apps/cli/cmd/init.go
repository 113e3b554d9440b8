package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gvsoc/gvtest/packages/core/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	forceInit       bool
	initPath        string
	initPythonPaths []string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter gvtest.yaml",
	Long: `Write a gvtest.yaml into the current directory, or the one given with
--path. Entries given with --python-path are written as they are; relative
entries are resolved against the directory holding the file.

Examples:
  gvtest init
  gvtest init --path tests/soc --python-path lib --python-path ../common
  gvtest init --force`,
	Args: cobra.NoArgs,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing file")
	initCmd.Flags().StringVarP(&initPath, "path", "p", "", "Directory to write the file into (default: current directory)")
	initCmd.Flags().StringArrayVar(&initPythonPaths, "python-path", nil, "Entry to add to python_paths (repeatable)")
}

func initCommand(cmd *cobra.Command, args []string) error {
	dir := initPath
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = cwd
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("target directory: %w", err)
	}
	if !info.IsDir() {
		return usageErrorf("target is not a directory: %s", dir)
	}

	target := filepath.Join(dir, settings.ConfigName)
	if !forceInit {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf("file already exists: %s (use --force to overwrite)", target)
		}
	}

	data, err := starterConfig(initPythonPaths)
	if err != nil {
		return err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	// Read the file back through the loader so a bad --python-path shows up
	// now rather than on the next test run.
	loader, err := newLoader([]string{dir})
	if err != nil {
		return err
	}
	if err := checkFile(loader, config.ConfigFile{Path: target}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
	return nil
}

// starterConfig renders a commented config file declaring paths.
func starterConfig(paths []string) ([]byte, error) {
	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, p := range paths {
		list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p})
	}
	if len(paths) == 0 {
		list.Style = yaml.FlowStyle
	}

	key := &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: config.PythonPathsKey,
		HeadComment: "Directories added to the Python module search path before tests run.\n" +
			"Relative entries are resolved against the directory of this file.\n" +
			"Files in parent directories are applied first.",
	}

	doc := &yaml.Node{
		Kind:    yaml.DocumentNode,
		Content: []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{key, list}}},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("rendering config: %w", err)
	}
	return data, nil
}
