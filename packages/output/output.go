package output

import (
	"fmt"
	"io"
	"os"
)

// Formatter renders a Report.
type Formatter interface {
	// FormatPaths writes the merged python paths.
	FormatPaths(r *Report) error
	// FormatFiles writes the discovered configuration files.
	FormatFiles(r *Report) error
}

// Report is what a paths or discover command found.
type Report struct {
	StartDir    string
	ConfigFiles []string
	Paths       []PathEntry
}

// PathEntry is one merged path and what is on disk at that location.
type PathEntry struct {
	Path   string
	Exists bool
	IsDir  bool
}

// NewReport builds a Report, checking each path on disk.
func NewReport(startDir string, configFiles, paths []string) *Report {
	r := &Report{
		StartDir:    startDir,
		ConfigFiles: configFiles,
		Paths:       make([]PathEntry, 0, len(paths)),
	}
	for _, p := range paths {
		entry := PathEntry{Path: p}
		if info, err := os.Stat(p); err == nil {
			entry.Exists = true
			entry.IsDir = info.IsDir()
		}
		r.Paths = append(r.Paths, entry)
	}
	return r
}

// Formats lists the names accepted by New.
var Formats = []string{"console", "json", "plain"}

// New returns the formatter called name writing to w.
func New(name string, w io.Writer, noColor bool) (Formatter, error) {
	switch name {
	case "", "console":
		return NewConsoleFormatter(WithWriter(w), WithNoColor(noColor)), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "plain":
		return NewPlainFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected one of %v)", name, Formats)
	}
}
