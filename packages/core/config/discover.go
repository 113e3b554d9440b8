package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// Discover returns the files named filename found in startDir and each of
// its ancestors, ordered from the filesystem root down to startDir.
//
// startDir must be absolute. Missing or unreadable candidates are skipped.
func Discover(startDir, filename string, logger *slog.Logger) []ConfigFile {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("starting config discovery", "dir", startDir)

	var found []ConfigFile
	current := startDir
	for {
		candidate := filepath.Join(current, filename)
		if isRegularFile(candidate, logger) {
			logger.Debug("found config file", "path", candidate)
			found = append(found, ConfigFile{Path: candidate})
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	slices.Reverse(found)

	logger.Debug("config discovery done", "count", len(found))
	return found
}

func isRegularFile(path string, logger *slog.Logger) bool {
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Debug("cannot stat config candidate", "path", path, "error", err)
		}
		return false
	}
	return info.Mode().IsRegular()
}

// absDir makes dir absolute and resolves symlinks when it can.
func absDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}
