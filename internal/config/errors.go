package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnsupportedFormat indicates a configuration file extension with no loader.
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrInvalidOptions indicates the merged options could not be decoded.
	ErrInvalidOptions = errors.New("invalid editor options")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// OptionError reports an option value that could not be decoded.
type OptionError struct {
	// Key is the option path, e.g. "autorender" or "pluginsOpts.forms".
	Key string
	Err error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s: %v", e.Key, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}
