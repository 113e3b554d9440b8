package output

import (
	"encoding/json"
	"io"
	"os"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	StartDir    string     `json:"startDir"`
	ConfigFiles []string   `json:"configFiles"`
	PythonPaths []JSONPath `json:"pythonPaths,omitempty"`
}

// JSONPath represents one merged path
type JSONPath struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
	IsDir  bool   `json:"isDir"`
}

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) FormatFiles(r *Report) error {
	return f.write(JSONOutput{
		StartDir:    r.StartDir,
		ConfigFiles: nonNil(r.ConfigFiles),
	})
}

func (f *JSONFormatter) FormatPaths(r *Report) error {
	out := JSONOutput{
		StartDir:    r.StartDir,
		ConfigFiles: nonNil(r.ConfigFiles),
		PythonPaths: make([]JSONPath, 0, len(r.Paths)),
	}
	for _, p := range r.Paths {
		out.PythonPaths = append(out.PythonPaths, JSONPath(p))
	}
	return f.write(out)
}

func (f *JSONFormatter) write(out JSONOutput) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// JSONChecks represents the validate command output
type JSONChecks struct {
	StartDir string      `json:"startDir"`
	Valid    bool        `json:"valid"`
	Files    []JSONCheck `json:"files"`
}

// JSONCheck represents one validated file
type JSONCheck struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Kind  string `json:"kind,omitempty"`
	Error string `json:"error,omitempty"`
}

func (f *JSONFormatter) FormatChecks(r *CheckReport) error {
	out := JSONChecks{
		StartDir: r.StartDir,
		Valid:    r.Failed() == 0,
		Files:    make([]JSONCheck, 0, len(r.Checks)),
	}
	for _, c := range r.Checks {
		jc := JSONCheck{File: c.File, Valid: c.Err == nil, Kind: string(c.Kind)}
		if c.Err != nil {
			jc.Error = c.Err.Error()
		}
		out.Files = append(out.Files, jc)
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
