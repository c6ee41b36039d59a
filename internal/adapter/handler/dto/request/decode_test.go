package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
)

func assertMessage(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, message, appErr.Message)
}

func TestDecode(t *testing.T) {
	t.Run("missing required argument", func(t *testing.T) {
		var req request.AddContactRequest

		err := request.Decode(map[string]any{}, &req)

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "name is required", appErr.Message)
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("nil arguments", func(t *testing.T) {
		var req request.GlobalSearchRequest

		err := request.Decode(nil, &req)

		assertMessage(t, err, "query is required")
	})

	t.Run("phones as single string", func(t *testing.T) {
		var req request.AddContactRequest

		err := request.Decode(map[string]any{"name": "John", "phones": "1234567890, 5555555555"}, &req)

		require.NoError(t, err)
		assert.Equal(t, request.StringList{"1234567890", "5555555555"}, req.Phones)
	})

	t.Run("tags as list", func(t *testing.T) {
		var req request.AddNoteRequest

		err := request.Decode(map[string]any{"title": "T", "tags": []any{"a", "b"}}, &req)

		require.NoError(t, err)
		assert.Equal(t, request.StringList{"a", "b"}, req.Tags)
	})

	t.Run("wrong list type", func(t *testing.T) {
		var req request.AddNoteRequest

		err := request.Decode(map[string]any{"title": "T", "tags": 5}, &req)

		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
	})

	t.Run("wrong scalar type", func(t *testing.T) {
		var req request.UpcomingBirthdaysRequest

		err := request.Decode(map[string]any{"days": "soon"}, &req)

		assertMessage(t, err, "days has the wrong type")
	})

	t.Run("out of range", func(t *testing.T) {
		var req request.UpcomingBirthdaysRequest

		err := request.Decode(map[string]any{"days": 400}, &req)

		assertMessage(t, err, "days must be at most 365")
	})

	t.Run("zero days is allowed", func(t *testing.T) {
		var req request.UpcomingBirthdaysRequest

		err := request.Decode(map[string]any{"days": 0}, &req)

		require.NoError(t, err)
		require.NotNil(t, req.Days)
		assert.Zero(t, *req.Days)
	})

	t.Run("unknown enum value", func(t *testing.T) {
		var req request.EditContactRequest

		err := request.Decode(map[string]any{"name": "John", "action": "rename"}, &req)

		assertMessage(t, err, "action must be one of: add_phone, remove_phone, change_phone, add_birthday")
	})

	t.Run("explicit empty content is kept", func(t *testing.T) {
		var req request.EditNoteRequest

		err := request.Decode(map[string]any{"note_id": "note_0001", "action": "edit_content", "content": ""}, &req)

		require.NoError(t, err)
		require.NotNil(t, req.Content)
		assert.Empty(t, *req.Content)
	})
}
