package config

import (
	"log/slog"
)

// Merge loads, validates and resolves every file in order and concatenates
// their python_paths. files must be ordered root first.
//
// The first failing file aborts the merge; no partial result is returned.
func (l *Loader) Merge(files []ConfigFile) ([]string, error) {
	all := []string{}
	for _, cf := range files {
		paths, err := l.mergeOne(cf)
		if err != nil {
			l.logger.Debug("error processing config file", "path", cf.Path, "error", err)
			return nil, err
		}
		all = append(all, paths...)
	}
	return all, nil
}

func (l *Loader) mergeOne(cf ConfigFile) ([]string, error) {
	cfg, err := l.Load(cf)
	if err != nil {
		return nil, err
	}
	if err := l.Validate(cfg, cf); err != nil {
		return nil, err
	}
	if !cfg.Has(PythonPathsKey) {
		return nil, nil
	}

	raw, err := cfg.PythonPaths()
	if err != nil {
		return nil, &ValidationError{File: cf.Path, Key: PythonPathsKey, Index: -1, Reason: err.Error()}
	}
	paths := l.Resolve(raw, cf.Dir())
	l.logger.Debug("collected python paths", "path", cf.Path, slog.Int("count", len(paths)))
	return paths, nil
}
