package output

import (
	"fmt"
	"io"
	"os"
)

// PlainFormatter prints one entry per line with no decoration.
type PlainFormatter struct {
	writer io.Writer
}

func NewPlainFormatter(w io.Writer) *PlainFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &PlainFormatter{writer: w}
}

func (f *PlainFormatter) FormatFiles(r *Report) error {
	for _, file := range r.ConfigFiles {
		if _, err := fmt.Fprintln(f.writer, file); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) FormatPaths(r *Report) error {
	for _, p := range r.Paths {
		if _, err := fmt.Fprintln(f.writer, p.Path); err != nil {
			return err
		}
	}
	return nil
}

func (f *PlainFormatter) FormatChecks(r *CheckReport) error {
	for _, c := range r.Checks {
		line := "ok\t" + c.File
		if c.Err != nil {
			line = "FAIL\t" + c.File + "\t" + c.Err.Error()
		}
		if _, err := fmt.Fprintln(f.writer, line); err != nil {
			return err
		}
	}
	return nil
}
