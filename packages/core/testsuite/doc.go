// Package testsuite declares the surface test descriptions are written
// against: targets, tests, testsets and the commands a test runs.
//
// Implementations live with the runner. Commands are plain values; Exec runs
// any of them the way the runner does, so a shell step sees the same
// environment (including the merged PYTHONPATH) as the rest of the run.
package testsuite
