package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

type NoteHandler struct {
	noteSvc NoteService
}

func NewNoteHandler(noteSvc NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

func (h *NoteHandler) AddNote(ctx context.Context, args map[string]any) response.Result {
	var req request.AddNoteRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	n, err := h.noteSvc.AddNote(ctx, operations.AddNoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	var data any
	if n != nil {
		data = response.NoteFromEntity(n)
	}
	return finish(err, response.FromError, fmt.Sprintf("Note '%s' added successfully", req.Title), data)
}

func (h *NoteHandler) SearchNotes(_ context.Context, args map[string]any) response.Result {
	var req request.SearchNotesRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	notes, err := h.noteSvc.SearchNotes(req.Query, entity.SearchMode(req.Mode))
	if err != nil {
		return response.FromError(err)
	}
	if len(notes) == 0 {
		return response.OK(fmt.Sprintf("No notes found matching '%s'", req.Query), response.NotesFromEntities(notes))
	}
	return response.OK(
		fmt.Sprintf("Found %s matching '%s'", plural(len(notes), "note"), req.Query),
		response.NotesFromEntities(notes),
	)
}

func (h *NoteHandler) ShowNotes(_ context.Context, args map[string]any) response.Result {
	var req request.ShowNotesRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	notes, err := h.noteSvc.ShowNotes(operations.ShowNotesInput{
		SortBy:  aggregate.SortField(req.SortBy),
		Reverse: req.Reverse,
		Limit:   req.Limit,
	})
	if err != nil {
		return response.FromError(err)
	}
	if len(notes) == 0 {
		return response.OK("No notes found. Add some notes first!", response.NotesFromEntities(notes))
	}
	return response.OK(fmt.Sprintf("Showing %s", plural(len(notes), "note")), response.NotesFromEntities(notes))
}

func (h *NoteHandler) EditNote(ctx context.Context, args map[string]any) response.Result {
	var req request.EditNoteRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	input := operations.EditNoteInput{
		NoteID: req.NoteID,
		Action: operations.NoteAction(req.Action),
		Title:  req.Title,
		Tag:    req.Tag,
	}
	switch input.Action {
	case operations.ActionEditTitle:
		if req.Title == "" {
			return missing("title")
		}
	case operations.ActionEditContent:
		if req.Content == nil {
			return missing("content")
		}
		input.Content = *req.Content
	case operations.ActionAddTag, operations.ActionRemoveTag:
		if req.Tag == "" {
			return missing("tag")
		}
	}

	res, err := h.noteSvc.EditNote(ctx, input)
	if err != nil && !errors.Is(err, domain.ErrPersistence) {
		return noteFailure(req.NoteID)(err)
	}
	return finish(err, noteFailure(req.NoteID), editNoteMessage(input, res.Changed), response.NoteFromEntity(res.Note))
}

func editNoteMessage(input operations.EditNoteInput, changed bool) string {
	switch input.Action {
	case operations.ActionEditTitle:
		return "Title updated successfully"
	case operations.ActionEditContent:
		return "Content updated successfully"
	case operations.ActionAddTag:
		if !changed {
			return fmt.Sprintf("Note already has tag '%s'", input.Tag)
		}
		return fmt.Sprintf("Tag '%s' added successfully", input.Tag)
	default:
		if !changed {
			return fmt.Sprintf("Note has no tag '%s'", input.Tag)
		}
		return fmt.Sprintf("Tag '%s' removed successfully", input.Tag)
	}
}

func (h *NoteHandler) DeleteNote(ctx context.Context, args map[string]any) response.Result {
	var req request.NoteIDRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	err := h.noteSvc.DeleteNote(ctx, req.NoteID)
	return finish(err, noteFailure(req.NoteID), "Note deleted successfully", nil)
}

func (h *NoteHandler) ViewNoteDetails(_ context.Context, args map[string]any) response.Result {
	var req request.NoteIDRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	n, err := h.noteSvc.NoteDetails(req.NoteID)
	if err != nil {
		return noteFailure(req.NoteID)(err)
	}
	return response.OK(fmt.Sprintf("Details for note '%s'", n.ID), response.NoteFromEntity(n))
}

func (h *NoteHandler) SearchNotesByTag(_ context.Context, args map[string]any) response.Result {
	var req request.NotesByTagRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	notes := h.noteSvc.NotesByTag(req.Tag)
	if len(notes) == 0 {
		return response.OK(fmt.Sprintf("No notes found with tag '%s'", req.Tag), response.NotesByID(notes))
	}
	return response.OK(
		fmt.Sprintf("Found %s tagged '%s'", plural(len(notes), "note"), req.Tag),
		response.NotesByID(notes),
	)
}

func (h *NoteHandler) ListTags(_ context.Context, _ map[string]any) response.Result {
	tags := h.noteSvc.ListTags()
	if len(tags) == 0 {
		return response.OK("No tags yet", response.TagsFromCounts(tags))
	}
	return response.OK(fmt.Sprintf("%s in use", plural(len(tags), "tag")), response.TagsFromCounts(tags))
}

func (h *NoteHandler) ExportNotes(_ context.Context, args map[string]any) response.Result {
	var req request.ExportNotesRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	format := aggregate.ExportFormat(req.Format)
	if format == "" {
		format = aggregate.FormatJSON
	}
	content, err := h.noteSvc.ExportNotes(format)
	if err != nil {
		return response.FromError(err)
	}
	return response.OK(fmt.Sprintf("Notes exported as %s", format), response.ExportResponse{
		Format:  string(format),
		Content: content,
	})
}

// noteFailure names the note in not-found messages.
func noteFailure(id string) func(error) response.Result {
	return func(err error) response.Result {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return response.FromError(apperror.New(apperror.CodeNotFound, fmt.Sprintf("Note with ID '%s' not found", id)))
		}
		return response.FromError(err)
	}
}
