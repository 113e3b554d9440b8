package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gvsoc/gvtest/packages/core/searchpath"
)

// Loader runs discovery and merging for one start directory.
type Loader struct {
	startDir    string
	filename    string
	logger      *slog.Logger
	configFiles []ConfigFile
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger warnings and diagnostics go to.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFilename overrides the configuration file name looked up in each
// directory.
func WithFilename(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.filename = name
		}
	}
}

// NewLoader creates a Loader rooted at startDir, or at the current working
// directory when startDir is empty.
func NewLoader(startDir string, opts ...Option) (*Loader, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determining working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := absDir(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory %s: %w", startDir, err)
	}

	l := &Loader{
		startDir: dir,
		filename: DefaultFilename,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// StartDir returns the absolute directory discovery starts from.
func (l *Loader) StartDir() string {
	return l.startDir
}

// Filename returns the configuration file name being looked up.
func (l *Loader) Filename() string {
	return l.filename
}

// ConfigFiles returns the files found by the last GetPythonPaths call.
func (l *Loader) ConfigFiles() []ConfigFile {
	out := make([]ConfigFile, len(l.configFiles))
	copy(out, l.configFiles)
	return out
}

// Discover lists the configuration files from the filesystem root down to
// the start directory.
func (l *Loader) Discover() []ConfigFile {
	return Discover(l.startDir, l.filename, l.logger)
}

// Load reads and parses one configuration file.
func (l *Loader) Load(cf ConfigFile) (*ParsedConfig, error) {
	data, err := os.ReadFile(cf.Path)
	if err != nil {
		return nil, &LoadError{File: cf.Path, Err: err}
	}

	cfg, empty, err := parse(cf.Path, data)
	if err != nil {
		return nil, err
	}
	if empty {
		l.logger.Warn("config file is empty", "path", cf.Path)
		return cfg, nil
	}

	l.logger.Debug("loaded config file", "path", cf.Path)
	return cfg, nil
}

// Validate checks cfg, loaded from cf.
func (l *Loader) Validate(cfg *ParsedConfig, cf ConfigFile) error {
	return Validate(cfg, cf, l.logger)
}

// Resolve makes raw entries absolute against anchorDir.
func (l *Loader) Resolve(raw []string, anchorDir string) []string {
	return ResolvePaths(raw, anchorDir, l.logger)
}

// GetPythonPaths discovers and merges the configuration files. It does not
// touch any search path registry.
func (l *Loader) GetPythonPaths() ([]string, error) {
	l.configFiles = l.Discover()
	if len(l.configFiles) == 0 {
		l.logger.Debug("no config files found", "name", l.filename)
		return []string{}, nil
	}

	for _, cf := range l.configFiles {
		l.logger.Debug("using config file", "path", cf.Path)
	}

	paths, err := l.Merge(l.configFiles)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		l.logger.Debug("no python_paths declared in config files")
	}
	return paths, nil
}

// LoadAndApply merges the configuration and registers the result into reg,
// or into searchpath.Process() when reg is nil. It returns how many entries
// were added.
func (l *Loader) LoadAndApply(reg *searchpath.Registry) (int, error) {
	paths, err := l.GetPythonPaths()
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, nil
	}

	if reg == nil {
		reg = searchpath.Process()
	}

	l.logger.Info("found config files", "count", len(l.configFiles))
	for _, cf := range l.configFiles {
		l.logger.Info("config file", "path", cf.Path)
	}

	before := reg.Len()
	searchpath.Apply(paths, reg, l.logger)
	return reg.Len() - before, nil
}

// GetPythonPathsForDir returns the merged python_paths for dir without
// registering them anywhere.
func GetPythonPathsForDir(dir string, opts ...Option) ([]string, error) {
	l, err := NewLoader(dir, opts...)
	if err != nil {
		return nil, err
	}
	return l.GetPythonPaths()
}

// LoadAndApplyConfig discovers, merges and registers the configuration for
// startDir (the working directory when empty) into reg.
func LoadAndApplyConfig(startDir string, reg *searchpath.Registry, opts ...Option) (int, error) {
	l, err := NewLoader(startDir, opts...)
	if err != nil {
		return 0, err
	}
	return l.LoadAndApply(reg)
}
