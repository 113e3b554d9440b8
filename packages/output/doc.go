// Package output renders merged search paths and discovered configuration
// files.
//
// Supported output formats:
//   - Console: Human-readable colored terminal output
//   - JSON: Machine-readable JSON output
//   - Plain: One entry per line, for shell scripts
//   - JUnit: JUnit XML of validation results for CI integration
//   - TAP: Test Anything Protocol version 13 of validation results
//
// Path formatters implement Formatter; validation results go through
// CheckFormatter, which JUnit and TAP also implement.
package output
