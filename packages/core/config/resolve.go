package config

import (
	"log/slog"
	"os"
	"path/filepath"
)

// ResolvePaths turns raw python_paths entries into absolute paths.
//
// Absolute entries are kept as written. Relative entries are joined to
// anchorDir, the directory of the file that declared them, and cleaned.
// Entries that do not exist, or are not directories, are logged and kept.
func ResolvePaths(raw []string, anchorDir string, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	resolved := make([]string, 0, len(raw))
	for _, p := range raw {
		abs := p
		if !filepath.IsAbs(p) {
			abs = filepath.Join(anchorDir, p)
		}

		info, err := os.Stat(abs)
		switch {
		case err != nil:
			logger.Warn("path does not exist", "path", abs, "dir", anchorDir)
		case !info.IsDir():
			logger.Warn("path is not a directory", "path", abs, "dir", anchorDir)
		}

		resolved = append(resolved, abs)
	}
	return resolved
}
