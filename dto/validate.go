package dto

import (
	"fmt"
	"strings"
)

// Validator is implemented by request shapes with rules the binding tags
// cannot express (blank strings, positivity of optional fields).
type Validator interface {
	Validate() error
}

// FieldError names the offending field of a request.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func fieldError(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}

func notBlank(field string, s *string) error {
	if s != nil && strings.TrimSpace(*s) == "" {
		return fieldError(field, "must not be blank")
	}
	return nil
}

func positiveInt[T ~int | ~int64 | ~uint](field string, v *T) error {
	if v != nil && *v <= 0 {
		return fieldError(field, "must be positive")
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
