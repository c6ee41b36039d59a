package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrContactNotFound      = errors.New("contact not found")
	ErrContactAlreadyExists = errors.New("contact already exists")
	ErrPhoneNotFound        = errors.New("phone not found")
	ErrPhoneAlreadyExists   = errors.New("phone already exists")
	ErrNoteNotFound         = errors.New("note not found")
	ErrPersistence          = errors.New("persistence failed")
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrInvalidArguments     = errors.New("invalid arguments")
)

// ValidationKind classifies why a raw field value was rejected.
type ValidationKind string

const (
	EmptyValue        ValidationKind = "empty_value"
	InvalidLength     ValidationKind = "invalid_length"
	InvalidCharacters ValidationKind = "invalid_characters"
	InvalidFormat     ValidationKind = "invalid_format"
	OutOfRange        ValidationKind = "out_of_range"
)

type ValidationError struct {
	Field   string
	Kind    ValidationKind
	Message string
}

func NewValidationError(field string, kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidationKindOf returns the kind of the first ValidationError in err's chain.
func ValidationKindOf(err error) (ValidationKind, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Kind, true
	}
	return "", false
}
