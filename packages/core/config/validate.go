package config

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Validate checks the shape of a parsed configuration.
//
// Unknown top-level keys only produce a warning. python_paths, when present,
// must be a list of strings.
func Validate(cfg *ParsedConfig, cf ConfigFile, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil || cfg.IsEmpty() {
		return nil
	}

	var unknown []string
	for _, k := range cfg.Keys() {
		if !knownKeys[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		logger.Warn("unknown keys in config file", "path", cf.Path, "keys", strings.Join(unknown, ", "))
	}

	value, ok := cfg.Get(PythonPathsKey)
	if !ok {
		return nil
	}
	return validatePythonPaths(cfg, cf, value)
}

func validatePythonPaths(cfg *ParsedConfig, cf ConfigFile, value any) error {
	fail := func(index int, reason string) error {
		return &ValidationError{
			File:   cf.Path,
			Key:    PythonPathsKey,
			Index:  index,
			Line:   cfg.line(PythonPathsKey, index),
			Reason: reason,
		}
	}

	// Timestamps and binary scalars decode to values JSON renders as
	// strings, so elements are checked on their YAML tags first.
	if idx, got := nonStringElement(cfg.nodes[PythonPathsKey]); idx >= 0 {
		return fail(idx, "expected a string, got "+got)
	}

	doc, err := jsonValue(value)
	if err != nil {
		return fail(-1, "expected a list, got "+goTypeName(value))
	}

	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("loading config schema: %w", err)
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(map[string]any{PythonPathsKey: doc}))
	if err != nil {
		return fail(-1, err.Error())
	}
	if result.Valid() {
		return nil
	}

	// Report the error closest to the start of the list.
	var first gojsonschema.ResultError
	firstIndex := 0
	for _, desc := range result.Errors() {
		idx := elementIndex(desc.Field())
		if first == nil || idx < firstIndex {
			first, firstIndex = desc, idx
		}
	}
	return fail(firstIndex, reason(first))
}

// nonStringElement returns the index and kind of the first element of a
// sequence node that is not a string scalar, or -1.
func nonStringElement(node *yaml.Node) (int, string) {
	if node == nil {
		return -1, ""
	}
	node = unalias(node)
	if node.Kind != yaml.SequenceNode {
		return -1, ""
	}
	for i, elem := range node.Content {
		elem = unalias(elem)
		if elem.Kind != yaml.ScalarNode || elem.ShortTag() != "!!str" {
			return i, kindName(elem)
		}
	}
	return -1, ""
}

// elementIndex extracts N from a "python_paths.N" field, -1 otherwise.
func elementIndex(field string) int {
	rest, ok := strings.CutPrefix(field, PythonPathsKey+".")
	if !ok {
		return -1
	}
	idx, err := strconv.Atoi(rest)
	if err != nil {
		return -1
	}
	return idx
}

func reason(desc gojsonschema.ResultError) string {
	if desc.Type() == "invalid_type" {
		details := desc.Details()
		expected, _ := details["expected"].(string)
		given, _ := details["given"].(string)
		if expected != "" && given != "" {
			return fmt.Sprintf("expected a %s, got %s", yamlTypeName(expected), yamlTypeName(given))
		}
	}
	return desc.Description()
}
