package searchpath

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// EnvVar is the environment variable the registry maps to.
const EnvVar = "PYTHONPATH"

// Registry is an ordered set of search path entries.
//
// Membership is plain string equality; no normalization happens here.
type Registry struct {
	entries []string
	index   map[string]struct{}
}

// New creates a registry holding entries, in order, without duplicates.
func New(entries ...string) *Registry {
	r := &Registry{index: make(map[string]struct{})}
	for _, e := range entries {
		r.Append(e)
	}
	return r
}

// FromEnv creates a registry seeded from a path-list environment variable.
// Empty elements are skipped.
func FromEnv(name string) *Registry {
	return New(splitList(os.Getenv(name))...)
}

var (
	processOnce sync.Once
	process     *Registry
)

// Process returns the registry shared by the whole process, seeded from
// $PYTHONPATH on first use.
func Process() *Registry {
	processOnce.Do(func() {
		process = FromEnv(EnvVar)
	})
	return process
}

// Contains reports whether path is already registered.
func (r *Registry) Contains(path string) bool {
	_, ok := r.index[path]
	return ok
}

// Append adds path unless it is already present and reports whether it was
// added.
func (r *Registry) Append(path string) bool {
	if r.index == nil {
		r.index = make(map[string]struct{})
	}
	if _, ok := r.index[path]; ok {
		return false
	}
	r.index[path] = struct{}{}
	r.entries = append(r.entries, path)
	return true
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in registration order.
func (r *Registry) Entries() []string {
	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// String joins the entries with the OS path list separator.
func (r *Registry) String() string {
	return strings.Join(r.entries, string(os.PathListSeparator))
}

// Environ returns env with EnvVar replaced by the registry contents. When
// the registry is empty EnvVar is removed.
func (r *Registry) Environ(env []string) []string {
	prefix := EnvVar + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	if r.Len() > 0 {
		out = append(out, prefix+r.String())
	}
	return out
}

// Apply registers every path in order, skipping those already present, and
// returns how many were added.
func Apply(paths []string, reg *Registry, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	added := 0
	for _, p := range paths {
		if reg.Append(p) {
			added++
			logger.Debug("added to search path", "path", p)
		} else {
			logger.Debug("already in search path", "path", p)
		}
	}

	logger.Info("registered search paths", "added", added, "total", reg.Len())
	return added
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var out []string
	for _, p := range filepath.SplitList(value) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
