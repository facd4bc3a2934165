// Package errors provides error types with actionable suggestions for humane.
// Errors carry enough context to tell the user what went wrong and what to
// try next.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error, including an accessor built
	// without a data source.
	ErrConfig = errors.New("configuration error")
	// ErrLoad indicates the backup snapshot could not be read or parsed.
	ErrLoad = errors.New("load error")
	// ErrNotFound indicates a file was not found.
	ErrNotFound = errors.New("not found")
)

// HumaneError is the base error type for humane errors.
// It wraps an underlying error and provides additional context.
type HumaneError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrLoad).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *HumaneError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *HumaneError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's kind matches the target.
func (e *HumaneError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestions.
func (e *HumaneError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *HumaneError) WithDetails(key, value string) *HumaneError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *HumaneError) WithCause(cause error) *HumaneError {
	e.Cause = cause
	return e
}

// New creates a new HumaneError with the given kind and message.
func New(kind error, message string) *HumaneError {
	return &HumaneError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *HumaneError {
	return &HumaneError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *HumaneError {
	return &HumaneError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Format renders any error for the terminal. HumaneErrors get their full
// formatted output, anything else is prefixed with "Error: ".
func Format(err error) string {
	var he *HumaneError
	if errors.As(err, &he) {
		return he.Format()
	}
	return fmt.Sprintf("Error: %v\n", err)
}
