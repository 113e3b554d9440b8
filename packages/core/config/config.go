package config

import (
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the name looked up in every ancestor directory.
	DefaultFilename = "gvtest.yaml"

	// PythonPathsKey is the only top-level key with a meaning.
	PythonPathsKey = "python_paths"
)

// knownKeys lists the top-level keys that do not trigger a warning.
var knownKeys = map[string]bool{
	PythonPathsKey: true,
}

// ConfigFile is a discovered configuration file.
type ConfigFile struct {
	// Path is the absolute path of the file.
	Path string
}

// Dir returns the anchor directory that relative entries resolve against.
func (f ConfigFile) Dir() string {
	return filepath.Dir(f.Path)
}

func (f ConfigFile) String() string {
	return f.Path
}

// ParsedConfig is the top-level mapping of one configuration file.
type ParsedConfig struct {
	keys   []string
	values map[string]any
	nodes  map[string]*yaml.Node
}

func newParsedConfig() *ParsedConfig {
	return &ParsedConfig{
		values: make(map[string]any),
		nodes:  make(map[string]*yaml.Node),
	}
}

// set stores a key, keeping the position of its first appearance.
func (c *ParsedConfig) set(key string, value any, node *yaml.Node) {
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
	c.nodes[key] = node
}

// Keys returns the top-level keys in document order.
func (c *ParsedConfig) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the decoded value of key.
func (c *ParsedConfig) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *ParsedConfig) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Len returns the number of top-level keys.
func (c *ParsedConfig) Len() int {
	return len(c.keys)
}

// IsEmpty reports whether the file declared nothing.
func (c *ParsedConfig) IsEmpty() bool {
	return len(c.keys) == 0
}

// PythonPaths returns the python_paths entries, or nil when the key is
// absent. Validate reports shape problems with more detail; this only refuses
// what it cannot return as strings.
func (c *ParsedConfig) PythonPaths() ([]string, error) {
	value, ok := c.values[PythonPathsKey]
	if !ok {
		return nil, nil
	}
	raw, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is a %s, not a list", PythonPathsKey, goTypeName(value))
	}
	if idx, got := nonStringElement(c.nodes[PythonPathsKey]); idx >= 0 {
		return nil, fmt.Errorf("%s entry %d is a %s, not a string", PythonPathsKey, idx, got)
	}

	paths := make([]string, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s entry %d is a %s, not a string", PythonPathsKey, i, goTypeName(v))
		}
		paths = append(paths, s)
	}
	return paths, nil
}

// line returns the source line of key's value, or of its index-th element
// when index >= 0. Zero means unknown.
func (c *ParsedConfig) line(key string, index int) int {
	node := c.nodes[key]
	if node == nil {
		return 0
	}
	if index >= 0 && node.Kind == yaml.SequenceNode && index < len(node.Content) {
		return node.Content[index].Line
	}
	return node.Line
}
