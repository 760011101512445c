// Package common defines the error taxonomy shared by the carbonnft client
// layers. Callers should use errors.Is / errors.As to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks bad or missing user input. The operation is not attempted.
	ErrValidation = errors.New("validation error")

	// ErrPrecondition marks an operation attempted in the wrong state,
	// e.g. submitting a booking without a connected wallet.
	ErrPrecondition = errors.New("precondition failed")

	// ErrGeneration marks a failed or unusable content generation call.
	ErrGeneration = errors.New("generation failed")

	// ErrMint marks a failure during the simulated mint step.
	ErrMint = errors.New("mint failed")

	// ErrStorage marks a durable read/write failure. It is logged, never shown.
	ErrStorage = errors.New("storage error")
)

// FieldError is a validation failure scoped to a single input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrValidation) match field errors.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// NewFieldError returns a *FieldError for field with the given message.
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// UserError carries a message fit for display next to its error class and
// the underlying cause, which is kept for logs.
type UserError struct {
	Kind    error
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewUserError classifies cause under kind with a user-facing message.
// cause may be nil.
func NewUserError(kind error, message string, cause error) error {
	return &UserError{Kind: kind, Message: message, Err: cause}
}

// Message returns the text to show the user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe.Message
	}
	return err.Error()
}
