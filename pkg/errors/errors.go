package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Lexical and grammar errors. These abort a parse.
	ErrTokenize      ErrorCode = "TOKENIZE"
	ErrUnknownTag    ErrorCode = "UNKNOWN_TAG"
	ErrMismatchedTag ErrorCode = "MISMATCHED_TAG"
	ErrSyntax        ErrorCode = "SYNTAX"

	// Resource guard
	ErrDepthExceeded ErrorCode = "DEPTH_EXCEEDED"

	// Semantic errors raised while resolving styles
	ErrInvalidAttribute ErrorCode = "INVALID_ATTRIBUTE"

	// Non-fatal issues, collected on the rendered grid
	ErrStructure        ErrorCode = "STRUCTURE"
	ErrUnknownTokenType ErrorCode = "UNKNOWN_TOKEN_TYPE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// Position is a location in markup source. Line and Column are 1-based;
// the zero Position means "unknown" (for example nodes built in code).
type Position struct {
	Offset int
	Line   int
	Column int
}

// IsZero reports whether the position is unknown
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.Offset == 0
}

func (p Position) String() string {
	if p.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// MarkupError represents a structured error with code, source position and details
type MarkupError struct {
	Code    ErrorCode
	Message string
	Pos     Position
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MarkupError) Error() string {
	msg := e.Message
	if !e.Pos.IsZero() {
		msg = e.Pos.String() + ": " + msg
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap implements the errors.Unwrap interface
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *MarkupError) Is(target error) bool {
	var targetErr *MarkupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MarkupError with the given code and message
func New(code ErrorCode, message string) *MarkupError {
	return &MarkupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MarkupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MarkupError {
	return &MarkupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// At creates a new MarkupError anchored at a source position
func At(pos Position, code ErrorCode, format string, args ...interface{}) *MarkupError {
	err := Newf(code, format, args...)
	err.Pos = pos
	return err
}

// Wrap wraps an existing error with a MarkupError
func Wrap(err error, code ErrorCode, message string) *MarkupError {
	if err == nil {
		return nil
	}
	return &MarkupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MarkupError {
	if err == nil {
		return nil
	}
	return &MarkupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *MarkupError) WithDetail(key string, value interface{}) *MarkupError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MarkupError
func GetErrorCode(err error) ErrorCode {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Code
	}
	return ErrUnknown
}

// GetErrorPosition returns the source position of an error, or the zero Position
func GetErrorPosition(err error) Position {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Pos
	}
	return Position{}
}

// GetErrorDetails returns the details from an error, or nil if not a MarkupError
func GetErrorDetails(err error) map[string]interface{} {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr.Details
	}
	return nil
}

// AsMarkupError returns the first MarkupError in err's chain, or nil
func AsMarkupError(err error) *MarkupError {
	var markupErr *MarkupError
	if errors.As(err, &markupErr) {
		return markupErr
	}
	return nil
}
