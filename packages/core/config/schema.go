package config

import (
	_ "embed"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	})
	return compiledSchema, schemaErr
}

// jsonValue converts a decoded YAML value into something encoding/json can
// marshal: mappings with non-string keys get their keys stringified.
// Timestamps and binary data are refused since JSON would turn them into
// strings.
func jsonValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			conv, err := jsonValue(x)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			conv, err := jsonValue(x)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			conv, err := jsonValue(x)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("non-finite number %v", t)
		}
		return t, nil
	case time.Time, []byte:
		return nil, fmt.Errorf("%s has no JSON form", goTypeName(t))
	default:
		return v, nil
	}
}

// jsonTypeNames maps JSON schema type names to the YAML vocabulary users
// write their files in.
var jsonTypeNames = map[string]string{
	"array":   "list",
	"object":  "mapping",
	"string":  "string",
	"integer": "integer",
	"number":  "float",
	"boolean": "boolean",
	"null":    "null",
}

func yamlTypeName(jsonType string) string {
	if name, ok := jsonTypeNames[jsonType]; ok {
		return name
	}
	return jsonType
}

// goTypeName names the YAML kind a decoded value came from.
func goTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case time.Time:
		return "timestamp"
	case []byte:
		return "binary"
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", v)
	}
}
