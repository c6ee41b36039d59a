package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
)

// Func handles one command and always produces a Result.
type Func func(ctx context.Context, args map[string]any) response.Result

const unsavedWarning = "changes are kept in memory but could not be saved; they will be written on the next successful save"

// finish turns the outcome of a mutation into a Result. A persistence error
// still counts as success and is reported as a warning.
func finish(err error, onError func(error) response.Result, message string, data any) response.Result {
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return onError(err)
	}
	res := response.OK(message, data)
	if err != nil {
		res.Warning = unsavedWarning
	}
	return res
}

func missing(field string) response.Result {
	return response.FromError(apperror.BadRequest(field + " is required"))
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
