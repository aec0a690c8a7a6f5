// Package errors holds the typed errors surfaced by configuration loading and
// the CLI. The engine itself never returns errors.
package errors

import (
	"fmt"
)

// ParseError is a failure to read or decode a widget file. Line is zero when
// the decoder did not report one.
type ParseError struct {
	Path    string
	Format  string
	Line    int
	Message string
	Err     error
}

// NewParseError wraps err as a ParseError for path.
func NewParseError(path, format string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Format: format, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	prefix := "parse error"
	if e.Format != "" {
		prefix = e.Format + " parse error"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", prefix, e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", prefix, e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports one invalid field. Field uses the file's own key
// names, e.g. widgets[2].position.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UsageError is a bad command-line argument.
type UsageError struct {
	Flag    string
	Message string
}

// NewUsageError constructs a UsageError for flag.
func NewUsageError(flag, message string) error {
	return &UsageError{Flag: flag, Message: message}
}

func (e *UsageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Flag != "" {
		return fmt.Sprintf("invalid --%s: %s", e.Flag, e.Message)
	}
	return e.Message
}
