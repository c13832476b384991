// Package apperr defines the typed error kinds the business services return.
// Handlers translate them to HTTP statuses; none of them is fatal — every
// failure is scoped to the single operation that triggered it.
package apperr

import (
	"errors"
	"fmt"
)

// ValidationError reports bad user input: a missing selection, a non-positive
// numeric field, or an unresolved reference. Recoverable; state is untouched.
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func NewFieldValidation(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// NotFoundError reports that a referenced entity no longer exists.
type NotFoundError struct {
	Entity string
	Ref    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Ref)
}

func NewNotFound(entity, ref string) *NotFoundError {
	return &NotFoundError{Entity: entity, Ref: ref}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
