package cmd

import (
	"errors"
	"fmt"

	"github.com/gvsoc/gvtest/packages/core/config"
	"github.com/gvsoc/gvtest/packages/output"
	"github.com/spf13/cobra"
)

var validateOutput string

var validateCmd = &cobra.Command{
	Use:   "validate [directory]",
	Short: "Check every config file that applies to a directory",
	Long: `Load and validate each gvtest.yaml between the filesystem root and the
directory. Unlike paths, every file is checked and reported even after a
failure.

Examples:
  gvtest validate
  gvtest validate ./tests --output junit > gvtest-config.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: validateCommand,
}

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "console", "Output format (console, json, plain, junit, tap)")
}

func validateCommand(cmd *cobra.Command, args []string) error {
	formatter, err := output.NewCheckFormatter(validateOutput, cmd.OutOrStdout(), settings.NoColor)
	if err != nil {
		return &usageError{err: err}
	}

	loader, err := newLoader(args)
	if err != nil {
		return err
	}

	report := &output.CheckReport{StartDir: loader.StartDir()}
	var firstErr error
	for _, cf := range loader.Discover() {
		err := checkFile(loader, cf)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		report.Checks = append(report.Checks, output.FileCheck{
			File: cf.Path,
			Kind: checkKind(err),
			Err:  err,
		})
	}

	if err := formatter.FormatChecks(report); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d config files invalid: %w", failed, len(report.Checks), firstErr)
	}
	return nil
}

func checkFile(loader *config.Loader, cf config.ConfigFile) error {
	cfg, err := loader.Load(cf)
	if err != nil {
		return err
	}
	return loader.Validate(cfg, cf)
}

func checkKind(err error) output.CheckKind {
	var loadErr *config.LoadError
	switch {
	case err == nil:
		return output.KindOK
	case errors.As(err, &loadErr):
		return output.KindLoad
	case errors.Is(err, config.ErrParse):
		return output.KindParse
	case errors.Is(err, config.ErrFormat):
		return output.KindFormat
	default:
		return output.KindValidation
	}
}
