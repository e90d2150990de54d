package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinel kinds, matched with errors.Is against the typed errors below.
var (
	ErrInvalidRange   = stdErrors.New("invalid range")
	ErrInvalidColor   = stdErrors.New("invalid color")
	ErrInvalidUnit    = stdErrors.New("invalid unit")
	ErrUnknownVariant = stdErrors.New("unknown variant")
)

// RangeError reports a degenerate viewport span, malformed anchors or an
// out-of-range numeric input.
type RangeError struct {
	Field   string
	Message string
}

// NewRangeError constructs a RangeError.
func NewRangeError(field, message string) error {
	return &RangeError{Field: field, Message: message}
}

func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid range: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid range: %s", e.Message)
}

// Is reports ErrInvalidRange as the kind of every RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

// ColorError reports a color string that failed hex normalization.
type ColorError struct {
	Input   string
	Message string
}

// NewColorError constructs a ColorError.
func NewColorError(input, message string) error {
	return &ColorError{Input: input, Message: message}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid color %q: %s", e.Input, e.Message)
}

// Is reports ErrInvalidColor as the kind of every ColorError.
func (e *ColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// UnitError reports an unsupported unit key or a size magnitude that cannot be
// converted.
type UnitError struct {
	Unit    string
	Message string
}

// NewUnitError constructs a UnitError.
func NewUnitError(unit, message string) error {
	return &UnitError{Unit: unit, Message: message}
}

func (e *UnitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Unit != "" {
		return fmt.Sprintf("invalid unit %q: %s", e.Unit, e.Message)
	}
	return fmt.Sprintf("invalid unit: %s", e.Message)
}

// Is reports ErrInvalidUnit as the kind of every UnitError.
func (e *UnitError) Is(target error) bool {
	return target == ErrInvalidUnit
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures project configuration validation issues.
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

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
