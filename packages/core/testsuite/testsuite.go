package testsuite

// Target is a platform configuration a test can be run on.
type Target interface {
	Name() string
}

// Test is a single test case.
type Test interface {
	// AddBench registers a benchmark value extracted from the test output
	// with the extract pattern.
	AddBench(extract, name, desc string)
	Path() string
	AddCommand(cmd Command)
}

// SdkTest is a test built and run through the SDK.
type SdkTest interface {
	AddBench(extract, name, desc string)
}

// Testset groups tests and nested testsets sharing targets and properties.
type Testset interface {
	SetName(name string)
	// AddTarget declares a target; config is its JSON description.
	AddTarget(name string, config string)
	Target() Target
	ImportTestset(file string) error
	NewTestset(name string) Testset
	NewTest(name string) Test
	NewSdkTest(name string, flags string) SdkTest
	NewSdkNetlistPowerTest(name string, flags string) SdkTest
	Property(name string) (string, bool)
	Platform() string
	Path() string
}
