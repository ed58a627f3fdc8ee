package entity

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a flight id is unknown to the store
var ErrNotFound = errors.New("flight not found")

// FieldError describes a single invalid field in a payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is a caller input error. It is never retried.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

// NewValidationError creates a validation error with an optional field list
func NewValidationError(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
