// Package apperr defines the error taxonomy shared by usecases and the HTTP
// delivery layer. Delivery code matches with errors.Is/errors.As and maps each
// kind to a status code; internal detail never reaches a response body.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound covers both "does not exist" and "not owned by the
	// caller" so a miss never reveals whether the resource exists.
	ErrNotFound = errors.New("not found")

	// ErrAuth is returned for any credential or token failure. The message
	// is deliberately generic for unknown email and wrong password alike.
	ErrAuth = errors.New("unable to login")

	// ErrValidation is the sentinel every ValidationError unwraps to.
	ErrValidation = errors.New("validation error")
)

// ValidationError carries per-field detail for malformed or disallowed input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidation(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, f := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
