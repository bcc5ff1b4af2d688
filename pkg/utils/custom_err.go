package utils

import (
	"errors"
	"fmt"
)

var (
	ErrFeedbackNotFound    = errors.New("feedback not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrEmptyComment        = errors.New("comment must not be empty")
	ErrEmptyUserID         = errors.New("user id must not be empty")
	ErrUnknownCategory     = errors.New("unknown feedback category")
	ErrInvalidTimestamp    = errors.New("timestamp must be RFC 3339")
	ErrAnalysisUnavailable = errors.New("ai analysis unavailable")
	ErrSchemaValidation    = errors.New("ai response violates schema")
	ErrDatabaseError       = errors.New("database error")
)

// SchemaValidationError reports which field of a structured response failed
// validation. It unwraps to ErrSchemaValidation so callers can branch on the
// taxonomy without inspecting the detail.
type SchemaValidationError struct {
	Field  string
	Detail string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("ai response violates schema: field %q: %s", e.Field, e.Detail)
}

func (e *SchemaValidationError) Unwrap() error {
	return ErrSchemaValidation
}
