package handler_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/mocks"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

func newNote(t *testing.T, id, title string, tags ...string) *entity.Note {
	t.Helper()
	n, err := entity.NewNote(id, title, "content", tags)
	require.NoError(t, err)
	return n
}

func TestNoteHandler_AddNote(t *testing.T) {
	ctx := context.Background()

	t.Run("adds note successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().AddNote(ctx, operations.AddNoteInput{
			Title:   "Groceries",
			Content: "milk",
			Tags:    []string{"home", "urgent"},
		}).Return(newNote(t, "note_0001", "Groceries", "home", "urgent"), nil)

		res := h.AddNote(ctx, map[string]any{
			"title":   "Groceries",
			"content": "milk",
			"tags":    []any{"home", "urgent"},
		})

		assert.True(t, res.Success)
		assert.Equal(t, "Note 'Groceries' added successfully", res.Message)
		data, ok := res.Data.(response.NoteResponse)
		require.True(t, ok)
		assert.Equal(t, "note_0001", data.ID)
		assert.Nil(t, data.UpdatedAt)
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewNoteHandler(mocks.NewMockNoteService(ctrl))

		res := h.AddNote(ctx, map[string]any{"content": "orphan"})

		assert.False(t, res.Success)
		assert.Equal(t, "title is required", res.Message)
	})

	t.Run("title too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().AddNote(ctx, gomock.Any()).
			Return(nil, domain.NewValidationError("title", domain.InvalidLength, "title must be 1-200 characters"))

		res := h.AddNote(ctx, map[string]any{"title": "x"})

		assert.False(t, res.Success)
		assert.Equal(t, apperror.CodeValidation, res.Code)
		assert.Equal(t, "title must be 1-200 characters", res.Message)
	})
}

func TestNoteHandler_EditNote(t *testing.T) {
	ctx := context.Background()

	t.Run("edit content requires content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewNoteHandler(mocks.NewMockNoteService(ctrl))

		res := h.EditNote(ctx, map[string]any{"note_id": "note_0001", "action": "edit_content"})

		assert.False(t, res.Success)
		assert.Equal(t, "content is required", res.Message)
	})

	t.Run("clears content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().EditNote(ctx, operations.EditNoteInput{
			NoteID: "note_0001",
			Action: operations.ActionEditContent,
		}).Return(&operations.EditNoteResult{Note: newNote(t, "note_0001", "T"), Changed: true}, nil)

		res := h.EditNote(ctx, map[string]any{"note_id": "note_0001", "action": "edit_content", "content": ""})

		assert.True(t, res.Success)
		assert.Equal(t, "Content updated successfully", res.Message)
	})

	t.Run("tag already present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().EditNote(ctx, gomock.Any()).
			Return(&operations.EditNoteResult{Note: newNote(t, "note_0001", "T", "work")}, nil)

		res := h.EditNote(ctx, map[string]any{"note_id": "note_0001", "action": "add_tag", "tag": "work"})

		assert.True(t, res.Success)
		assert.Equal(t, "Note already has tag 'work'", res.Message)
	})

	t.Run("unknown note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().EditNote(ctx, gomock.Any()).
			Return(nil, fmt.Errorf("editing note: %w", domain.ErrNoteNotFound))

		res := h.EditNote(ctx, map[string]any{"note_id": "note_0042", "action": "edit_title", "title": "New"})

		assert.False(t, res.Success)
		assert.Equal(t, "Note with ID 'note_0042' not found", res.Message)
	})

	t.Run("save failure is a warning", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().EditNote(ctx, gomock.Any()).
			Return(&operations.EditNoteResult{Note: newNote(t, "note_0001", "New"), Changed: true}, domain.ErrPersistence)

		res := h.EditNote(ctx, map[string]any{"note_id": "note_0001", "action": "edit_title", "title": "New"})

		assert.True(t, res.Success)
		assert.Equal(t, "Title updated successfully", res.Message)
		assert.NotEmpty(t, res.Warning)
	})
}

func TestNoteHandler_DeleteNote(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteSvc := mocks.NewMockNoteService(ctrl)
	h := handler.NewNoteHandler(noteSvc)

	noteSvc.EXPECT().DeleteNote(ctx, "note_0001").Return(nil)
	noteSvc.EXPECT().DeleteNote(ctx, "note_0002").Return(domain.ErrNoteNotFound)

	res := h.DeleteNote(ctx, map[string]any{"note_id": "note_0001"})
	assert.True(t, res.Success)

	res = h.DeleteNote(ctx, map[string]any{"note_id": "note_0002"})
	assert.False(t, res.Success)
	assert.Equal(t, "Note with ID 'note_0002' not found", res.Message)
}

func TestNoteHandler_SearchNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("passes mode through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		noteSvc := mocks.NewMockNoteService(ctrl)
		h := handler.NewNoteHandler(noteSvc)

		noteSvc.EXPECT().SearchNotes("milk", entity.SearchRanked).
			Return([]*entity.Note{newNote(t, "note_0001", "Groceries")}, nil)

		res := h.SearchNotes(ctx, map[string]any{"query": "milk", "mode": "ranked"})

		assert.True(t, res.Success)
		assert.Equal(t, "Found 1 note matching 'milk'", res.Message)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		h := handler.NewNoteHandler(mocks.NewMockNoteService(ctrl))

		res := h.SearchNotes(ctx, map[string]any{"query": "milk", "mode": "fuzzy"})

		assert.False(t, res.Success)
		assert.Equal(t, "mode must be one of: title_content, title_content_tags, ranked", res.Message)
	})
}

func TestNoteHandler_ShowNotes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteSvc := mocks.NewMockNoteService(ctrl)
	h := handler.NewNoteHandler(noteSvc)

	noteSvc.EXPECT().ShowNotes(operations.ShowNotesInput{SortBy: aggregate.SortByTitle, Limit: 5}).
		Return([]*entity.Note{newNote(t, "note_0001", "A"), newNote(t, "note_0002", "B")}, nil)

	res := h.ShowNotes(ctx, map[string]any{"sort_by": "title", "limit": 5})

	assert.True(t, res.Success)
	assert.Equal(t, "Showing 2 notes", res.Message)
}

func TestNoteHandler_Tags(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteSvc := mocks.NewMockNoteService(ctrl)
	h := handler.NewNoteHandler(noteSvc)

	noteSvc.EXPECT().NotesByTag("work").Return([]*entity.Note{newNote(t, "note_0001", "A", "work")})
	noteSvc.EXPECT().ListTags().Return([]aggregate.TagCount{{Tag: "work", Count: 1}})

	res := h.SearchNotesByTag(ctx, map[string]any{"tag": "work"})
	assert.True(t, res.Success)
	assert.Equal(t, "Found 1 note tagged 'work'", res.Message)
	byID, ok := res.Data.(map[string]response.NoteResponse)
	require.True(t, ok)
	require.Contains(t, byID, "note_0001")
	assert.Equal(t, "A", byID["note_0001"].Title)

	res = h.ListTags(ctx, nil)
	assert.True(t, res.Success)
	assert.Equal(t, []response.TagResponse{{Tag: "work", Count: 1}}, res.Data)
}

func TestNoteHandler_ExportNotes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteSvc := mocks.NewMockNoteService(ctrl)
	h := handler.NewNoteHandler(noteSvc)

	noteSvc.EXPECT().ExportNotes(aggregate.FormatJSON).Return("[]", nil)

	res := h.ExportNotes(ctx, map[string]any{})

	assert.True(t, res.Success)
	assert.Equal(t, response.ExportResponse{Format: "json", Content: "[]"}, res.Data)

	res = h.ExportNotes(ctx, map[string]any{"format": "pdf"})
	assert.False(t, res.Success)
}
