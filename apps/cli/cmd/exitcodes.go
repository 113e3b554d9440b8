package cmd

import (
	"errors"
	"fmt"

	"github.com/gvsoc/gvtest/packages/core/config"
)

// Exit codes for gvtest CLI
const (
	// ExitSuccess indicates the command succeeded
	ExitSuccess = 0

	// ExitFailure indicates a generic failure
	ExitFailure = 1

	// ExitParseError indicates a config file is not valid YAML
	ExitParseError = 2

	// ExitConfigError indicates a config file could not be read or has the
	// wrong shape
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// usageError marks errors caused by how the CLI was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// childExitError carries the exit status of a command run by gvtest exec.
type childExitError struct {
	code int
}

func (e *childExitError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var childErr *childExitError
	var loadErr *config.LoadError
	var usageErr *usageError
	switch {
	case errors.As(err, &childErr):
		return childErr.code
	case errors.Is(err, config.ErrParse):
		return ExitParseError
	case errors.Is(err, config.ErrFormat), errors.Is(err, config.ErrValidation), errors.As(err, &loadErr):
		return ExitConfigError
	case errors.As(err, &usageErr):
		return ExitUsageError
	default:
		return ExitFailure
	}
}
