package config

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// parse decodes the content of one configuration file. The boolean result is
// true when the document holds nothing at all.
func parse(file string, data []byte) (*ParsedConfig, bool, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return newParsedConfig(), true, nil
		}
		return nil, false, &ParseError{File: file, Err: err}
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("expected a single document, found more than one")
		}
		return nil, false, &ParseError{File: file, Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return newParsedConfig(), true, nil
		}
		root = root.Content[0]
	}
	root = unalias(root)

	if root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null" {
		return newParsedConfig(), true, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, false, &FormatError{File: file, Got: kindName(root)}
	}

	// Decoding the whole mapping reports duplicate keys and bad merges.
	var whole map[string]any
	if err := root.Decode(&whole); err != nil {
		return nil, false, &ParseError{File: file, Err: err}
	}

	cfg := newParsedConfig()
	if err := addPairs(cfg, root, true); err != nil {
		return nil, false, &ParseError{File: file, Err: err}
	}
	return cfg, false, nil
}

// addPairs stores the keys of mapping m in document order. Keys pulled in
// through merge keys come after and never replace a key already present;
// with override false the same holds for the explicit keys of m.
func addPairs(cfg *ParsedConfig, m *yaml.Node, override bool) error {
	var merges []*yaml.Node
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, value := m.Content[i], m.Content[i+1]
		if key.ShortTag() == "!!merge" {
			merges = append(merges, value)
			continue
		}

		name := keyName(key)
		if !override && cfg.Has(name) {
			continue
		}
		var v any
		if err := value.Decode(&v); err != nil {
			return err
		}
		cfg.set(name, v, value)
	}

	for _, src := range merges {
		src = unalias(src)
		sources := []*yaml.Node{src}
		if src.Kind == yaml.SequenceNode {
			sources = src.Content
		}
		for _, s := range sources {
			if s = unalias(s); s.Kind == yaml.MappingNode {
				if err := addPairs(cfg, s, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// keyName is how a mapping key is reported. Non-string scalars keep their
// source text; null keys read "null" whatever their spelling.
func keyName(key *yaml.Node) string {
	key = unalias(key)
	switch {
	case key.Kind != yaml.ScalarNode:
		return "<" + kindName(key) + ">"
	case key.ShortTag() == "!!null":
		return "null"
	default:
		return key.Value
	}
}

func unalias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!str":
			return "string"
		case "!!int":
			return "integer"
		case "!!float":
			return "float"
		case "!!bool":
			return "boolean"
		default:
			return strings.TrimPrefix(n.ShortTag(), "!!")
		}
	default:
		return "unknown"
	}
}
