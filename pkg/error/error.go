package error

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by who can fix them.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by the submitted SQL text.
	// Examples: syntax errors, unknown statements, malformed expressions.
	// These errors are fixable by editing the input; the shell keeps running.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents errors from the environment rather than the input.
	// Examples: unreadable batch files, terminal failures, log file permissions.
	ErrCategorySystem
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "user"
	case ErrCategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// DBError represents a structured error with context for display.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "SYNTAX_ERROR", "UNEXPECTED_END").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific error instance.
	// Example: "at position 14" where Message might be "expected an identifier".
	Detail string

	// Hint suggests how the user might fix or work around this error.
	// Example: "Every column needs a type: INT, BOOL or VARCHAR".
	Hint string

	// Operation identifies the operation that was being performed when the error occurred.
	// Examples: "ParseStatement", "CheckFile".
	Operation string

	// Component identifies the system component where the error originated.
	// Examples: "parser", "shell".
	Component string

	// Cause is the underlying error that triggered this error.
	// This enables error chaining while preserving the original error context.
	Cause error

	// Stack contains the call stack where this error was created.
	// Used for debugging and is automatically captured in New() and Wrap().
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	err := &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
	return err
}

// Wrap wraps an existing error with context information.
// If the error is already a DBError, it enriches the existing error with
// operation and component context (only if not already set).
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WithDetail sets Detail and returns the error for chaining.
func (e *DBError) WithDetail(detail string) *DBError {
	e.Detail = detail
	return e
}

// WithHint sets Hint and returns the error for chaining.
func (e *DBError) WithHint(hint string) *DBError {
	e.Hint = hint
	return e
}

// WithCause sets Cause and returns the error for chaining.
func (e *DBError) WithCause(cause error) *DBError {
	e.Cause = cause
	return e
}

// IsUserError reports whether err is, or wraps, a user-category DBError.
func IsUserError(err error) bool {
	var dbErr *DBError
	return errors.As(err, &dbErr) && dbErr.Category == ErrCategoryUser
}

// captureStack captures the current call stack for debugging purposes.
// It skips the first 3 frames to exclude captureStack, New/Wrap, and the
// immediate caller, focusing on the actual error origin.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component)
//
// The cause is not repeated when Message was taken from it.
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil && e.Cause.Error() != e.Message {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with Go's standard error handling functions like errors.Is and errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
