package config

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrParse      = errors.New("invalid YAML")
	ErrFormat     = errors.New("invalid config format")
	ErrValidation = errors.New("invalid config")
)

// LoadError is returned when a configuration file cannot be read.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config file %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a configuration file is not valid YAML.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse YAML file %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// FormatError is returned when the top-level value is not a mapping.
type FormatError struct {
	File string
	// Got names the kind of value found, e.g. "list" or "string".
	Got string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid config format in %s: expected a mapping, got %s", e.File, e.Got)
}

// Is matches ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// ValidationError is returned when a recognized key has the wrong shape.
type ValidationError struct {
	File string
	Key  string
	// Index is the offending list element, or -1 when the value itself is wrong.
	Index int
	// Line is the 1-based source line, 0 when unknown.
	Line   int
	Reason string
}

func (e *ValidationError) Error() string {
	where := e.File
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if e.Index >= 0 {
		return fmt.Sprintf("invalid %s entry at index %d in %s: %s", e.Key, e.Index, where, e.Reason)
	}
	return fmt.Sprintf("invalid %s in %s: %s", e.Key, where, e.Reason)
}

// Is matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
