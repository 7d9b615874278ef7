// Package apperr defines the two error kinds surfaced by the store: validation
// failures and references to ids that no longer exist.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
)

// ValidationError reports user-correctable input problems keyed by field
// (an input name such as "name", or an inventory column id).
type ValidationError struct {
	Fields map[string]string
	cause  error
}

// Validation builds a single-field ValidationError.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ValidationFields builds a ValidationError from a field → message map.
func ValidationFields(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Wrap attaches a domain sentinel so callers can match it with errors.Is.
func (e *ValidationError) Wrap(cause error) *ValidationError {
	e.cause = cause
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// NotFoundError reports a stale or unknown id.
type NotFoundError struct {
	Resource string
	ID       string
	cause    error
}

// NotFound builds a NotFoundError wrapping a domain sentinel.
func NotFound(cause error, resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id, cause: cause}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// FieldErrors extracts the per-field messages from err, or nil when err is
// not a validation failure.
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
