package output

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"time"
)

// JUnit XML structures

// JUnitTestSuites is the root element
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr,omitempty"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Timestamp  string           `xml:"timestamp,attr,omitempty"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite groups the configuration files of one discovery
type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Timestamp string          `xml:"timestamp,attr,omitempty"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase represents one configuration file
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
}

// JUnitFailure represents an invalid configuration file
type JUnitFailure struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

// JUnitError represents a file that could not be read
type JUnitError struct {
	Message string `xml:"message,attr,omitempty"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

// JUnitFormatter formats validation results as JUnit XML
type JUnitFormatter struct {
	writer io.Writer
	now    func() time.Time
}

func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JUnitFormatter{writer: w, now: time.Now}
}

func (f *JUnitFormatter) FormatChecks(r *CheckReport) error {
	timestamp := f.now().Format(time.RFC3339)

	suite := JUnitTestSuite{
		Name:      r.StartDir,
		Tests:     len(r.Checks),
		Timestamp: timestamp,
		TestCases: make([]JUnitTestCase, 0, len(r.Checks)),
	}

	for _, c := range r.Checks {
		tc := JUnitTestCase{
			Name:      c.File,
			ClassName: "gvtest.config",
		}

		switch {
		case c.Err == nil:
		case c.Kind == KindLoad:
			suite.Errors++
			tc.Error = &JUnitError{
				Message: c.Err.Error(),
				Type:    string(c.Kind),
			}
		default:
			suite.Failures++
			tc.Failure = &JUnitFailure{
				Message: "invalid configuration",
				Type:    string(c.Kind),
				Content: c.Err.Error(),
			}
		}

		suite.TestCases = append(suite.TestCases, tc)
	}

	suites := JUnitTestSuites{
		Name:       "gvtest",
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Errors:     suite.Errors,
		Timestamp:  timestamp,
		TestSuites: []JUnitTestSuite{suite},
	}

	fmt.Fprintf(f.writer, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.writer)
	return err
}
