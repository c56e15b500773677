// Package errors provides a lightweight structured error type (KtdocsError)
// for category-based classification in the CLI.
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrorCategory represents the category of an error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Reading and writing tree files and scaffold output
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryEncoding   ErrorCategory = "encoding"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// KtdocsError is a structured error with category, severity and context
type KtdocsError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for KtdocsError
type ContextFields map[string]any

// Error implements the error interface
func (e *KtdocsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping
func (e *KtdocsError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *KtdocsError) WithContext(key string, value any) *KtdocsError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new KtdocsError
func New(category ErrorCategory, severity ErrorSeverity, message string) *KtdocsError {
	return &KtdocsError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new KtdocsError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *KtdocsError {
	return &KtdocsError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// As extracts the outermost KtdocsError from an error chain.
func As(err error) (*KtdocsError, bool) {
	var ke *KtdocsError
	if stdErrors.As(err, &ke) {
		return ke, true
	}
	return nil, false
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if ke, ok := As(err); ok {
		return ke.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a KtdocsError
func GetCategory(err error) ErrorCategory {
	if ke, ok := As(err); ok {
		return ke.Category
	}
	return CategoryInternal
}
