// Package cmd implements the gvtest CLI commands using Cobra.
//
// Available commands:
//   - paths: Print the merged python_paths for a directory
//   - discover: List the gvtest.yaml files that apply to a directory
//   - validate: Load and check every applicable config file
//   - env: Print a PYTHONPATH export extended with the merged paths
//   - exec: Run a command with the merged paths on PYTHONPATH
//   - init: Write a starter gvtest.yaml
//   - version: Show gvtest version information
//
// Persistent flags are bound to GVTEST_* environment variables through
// viper, so GVTEST_LOG_LEVEL=debug works like --log-level debug.
package cmd
