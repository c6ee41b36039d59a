package apperror

import (
	"errors"
	"fmt"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
)

const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeConflict         = "CONFLICT"
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnknownOperation = "UNKNOWN_OPERATION"
	CodePersistence      = "PERSISTENCE_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
	}
}

// InvalidArgument is a BadRequest that still matches domain.ErrInvalidArguments.
func InvalidArgument(message string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: message,
		Err:     domain.ErrInvalidArguments,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Code:    CodeConflict,
		Message: message,
	}
}

func UnknownOperation(name string) *AppError {
	return &AppError{
		Code:    CodeUnknownOperation,
		Message: fmt.Sprintf("unknown function: %s", name),
		Err:     domain.ErrUnknownOperation,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "an internal error occurred",
		Err:     err,
	}
}

// FromError classifies err by the domain sentinel it wraps. Validation
// errors keep the validator's own message.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var vErr *domain.ValidationError
	var classified *AppError
	switch {
	case errors.As(err, &vErr):
		classified = New(CodeValidation, vErr.Message)
	case errors.Is(err, domain.ErrContactNotFound):
		classified = NotFound("contact")
	case errors.Is(err, domain.ErrNoteNotFound):
		classified = NotFound("note")
	case errors.Is(err, domain.ErrPhoneNotFound):
		classified = NotFound("phone")
	case errors.Is(err, domain.ErrContactAlreadyExists):
		classified = Conflict("contact already exists")
	case errors.Is(err, domain.ErrPhoneAlreadyExists):
		classified = Conflict("phone already exists")
	case errors.Is(err, domain.ErrInvalidArguments):
		classified = BadRequest(err.Error())
	case errors.Is(err, domain.ErrUnknownOperation):
		classified = New(CodeUnknownOperation, err.Error())
	case errors.Is(err, domain.ErrPersistence):
		classified = New(CodePersistence, "failed to save data")
	default:
		return Internal(err)
	}
	classified.Err = err
	return classified
}
