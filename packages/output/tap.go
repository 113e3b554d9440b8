package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TAPFormatter formats validation results in TAP (Test Anything Protocol)
// version 13, one test point per config file.
type TAPFormatter struct {
	writer io.Writer
}

// tapDiagnostic is the YAML block following a failed test point.
type tapDiagnostic struct {
	Message  string `yaml:"message"`
	Severity string `yaml:"severity"`
	Kind     string `yaml:"kind,omitempty"`
}

func NewTAPFormatter(w io.Writer) *TAPFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &TAPFormatter{writer: w}
}

func (f *TAPFormatter) FormatChecks(r *CheckReport) error {
	fmt.Fprintf(f.writer, "TAP version 13\n")
	fmt.Fprintf(f.writer, "1..%d\n", len(r.Checks))

	for i, c := range r.Checks {
		if c.Err == nil {
			fmt.Fprintf(f.writer, "ok %d - %s\n", i+1, c.File)
			continue
		}

		fmt.Fprintf(f.writer, "not ok %d - %s\n", i+1, c.File)
		block, err := yaml.Marshal(tapDiagnostic{
			Message:  c.Err.Error(),
			Severity: "error",
			Kind:     string(c.Kind),
		})
		if err != nil {
			return fmt.Errorf("encoding diagnostic for %s: %w", c.File, err)
		}
		fmt.Fprintf(f.writer, "  ---\n")
		for _, line := range strings.Split(strings.TrimRight(string(block), "\n"), "\n") {
			fmt.Fprintf(f.writer, "  %s\n", line)
		}
		fmt.Fprintf(f.writer, "  ...\n")
	}
	return nil
}
