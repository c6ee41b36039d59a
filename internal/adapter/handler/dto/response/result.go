package response

import (
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
)

// Result is the uniform reply to every command. Warning is set when the
// operation succeeded in memory but could not be saved.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
	Warning string `json:"warning,omitempty"`
}

func OK(message string, data any) Result {
	return Result{Success: true, Message: message, Data: data}
}

func Fail(code, message string) Result {
	return Result{Success: false, Code: code, Message: message}
}

func FromError(err error) Result {
	appErr := apperror.FromError(err)
	return Fail(appErr.Code, appErr.Message)
}

type PaginationResponse struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}
