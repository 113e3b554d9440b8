package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		if w != nil {
			f.writer = w
		}
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatFiles(r *Report) error {
	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", bold("Config files for"), r.StartDir)
	if len(r.ConfigFiles) == 0 {
		fmt.Fprintf(f.writer, "  %s\n", gray("(none found)"))
		return nil
	}
	for i, file := range r.ConfigFiles {
		fmt.Fprintf(f.writer, "  %s %s\n", gray(fmt.Sprintf("%d.", i+1)), file)
	}
	return nil
}

func (f *ConsoleFormatter) FormatPaths(r *Report) error {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	if err := f.FormatFiles(r); err != nil {
		return err
	}

	fmt.Fprintf(f.writer, "\n%s\n", bold("Python paths"))
	if len(r.Paths) == 0 {
		fmt.Fprintf(f.writer, "  %s\n", gray("(none declared)"))
		return nil
	}

	for i, p := range r.Paths {
		var status string
		switch {
		case !p.Exists:
			status = yellow("⚠ missing")
		case !p.IsDir:
			status = yellow("⚠ not a directory")
		default:
			status = green("✓")
		}
		fmt.Fprintf(f.writer, "  %s %s %s\n", gray(fmt.Sprintf("%d.", i+1)), p.Path, status)
	}
	return nil
}

func (f *ConsoleFormatter) FormatChecks(r *CheckReport) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", bold("Validating config files for"), r.StartDir)
	if len(r.Checks) == 0 {
		fmt.Fprintf(f.writer, "  %s\n", gray("(none found)"))
		return nil
	}

	for _, c := range r.Checks {
		if c.Err == nil {
			fmt.Fprintf(f.writer, "  %s %s\n", green("✓"), c.File)
			continue
		}
		fmt.Fprintf(f.writer, "  %s %s\n", red("✗"), c.File)
		fmt.Fprintf(f.writer, "    %s\n", red(c.Err.Error()))
	}

	failed := r.Failed()
	summary := fmt.Sprintf("%d file(s), %d invalid", len(r.Checks), failed)
	if failed > 0 {
		fmt.Fprintf(f.writer, "\n%s\n", red(summary))
	} else {
		fmt.Fprintf(f.writer, "\n%s\n", green(summary))
	}
	return nil
}
