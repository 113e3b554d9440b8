// Package logging builds the structured logger used across gvtest.
//
// Library packages accept a *slog.Logger and never print on their own. The
// CLI builds one here from its settings:
//
//	logger := logging.New(logging.Options{Level: "info", Format: "text"})
//	logger.Warn("path does not exist", "path", p)
//
// Text output is rendered by charmbracelet/log, JSON output by log/slog.
package logging
