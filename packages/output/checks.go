package output

import (
	"fmt"
	"io"
)

// CheckKind classifies a failed file check.
type CheckKind string

const (
	KindOK         CheckKind = ""
	KindLoad       CheckKind = "LoadError"
	KindParse      CheckKind = "ParseError"
	KindFormat     CheckKind = "FormatError"
	KindValidation CheckKind = "ValidationError"
)

// FileCheck is the validation outcome of one configuration file.
type FileCheck struct {
	File string
	Kind CheckKind
	Err  error
}

// CheckReport is what the validate command found.
type CheckReport struct {
	StartDir string
	Checks   []FileCheck
}

// Failed returns the number of files that did not pass.
func (r *CheckReport) Failed() int {
	n := 0
	for _, c := range r.Checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}

// CheckFormatter renders a CheckReport.
type CheckFormatter interface {
	FormatChecks(r *CheckReport) error
}

// CheckFormats lists the names accepted by NewCheckFormatter.
var CheckFormats = []string{"console", "json", "plain", "junit", "tap"}

// NewCheckFormatter returns the check formatter called name writing to w.
func NewCheckFormatter(name string, w io.Writer, noColor bool) (CheckFormatter, error) {
	switch name {
	case "", "console":
		return NewConsoleFormatter(WithWriter(w), WithNoColor(noColor)), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "plain":
		return NewPlainFormatter(w), nil
	case "junit":
		return NewJUnitFormatter(w), nil
	case "tap":
		return NewTAPFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", name, CheckFormats)
	}
}
