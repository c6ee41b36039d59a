package operations

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
)

type NoteAction string

const (
	ActionEditTitle   NoteAction = "edit_title"
	ActionEditContent NoteAction = "edit_content"
	ActionAddTag      NoteAction = "add_tag"
	ActionRemoveTag   NoteAction = "remove_tag"
)

type AddNoteInput struct {
	Title   string
	Content string
	Tags    []string
}

func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (*entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.notes.CreateNote(input.Title, input.Content, input.Tags)
	if err != nil {
		return nil, err
	}
	n, _ := s.notes.FindNote(id)
	return n, s.persist(ctx)
}

// SearchNotes uses the configured mode when mode is empty.
func (s *Service) SearchNotes(query string, mode entity.SearchMode) ([]*entity.Note, error) {
	if mode == "" {
		mode = s.searchMode
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: unknown search mode: %s", domain.ErrInvalidArguments, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.SearchNotes(query, mode), nil
}

type ShowNotesInput struct {
	SortBy  aggregate.SortField
	Reverse bool
	Limit   int
}

// ShowNotes lists notes sorted by creation time unless SortBy says
// otherwise. A non-positive Limit returns every note.
func (s *Service) ShowNotes(input ShowNotesInput) ([]*entity.Note, error) {
	if input.SortBy == "" {
		input.SortBy = aggregate.SortByCreated
	}
	if !input.SortBy.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort field: %s", domain.ErrInvalidArguments, input.SortBy)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.notes.SortNotes(input.SortBy, input.Reverse)
	if input.Limit > 0 && len(notes) > input.Limit {
		notes = notes[:input.Limit]
	}
	return notes, nil
}

type EditNoteInput struct {
	NoteID  string
	Action  NoteAction
	Title   string
	Content string
	Tag     string
}

// EditNoteResult reports whether a tag action changed anything. Adding a tag
// the note already has, or removing one it lacks, is not an error.
type EditNoteResult struct {
	Note    *entity.Note
	Changed bool
}

func (s *Service) EditNote(ctx context.Context, input EditNoteInput) (*EditNoteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes.FindNote(input.NoteID); !ok {
		return nil, fmt.Errorf("editing note %s: %w", input.NoteID, domain.ErrNoteNotFound)
	}

	changed := true
	var err error
	switch input.Action {
	case ActionEditTitle:
		err = s.notes.UpdateTitle(input.NoteID, input.Title)
	case ActionEditContent:
		err = s.notes.UpdateContent(input.NoteID, input.Content)
	case ActionAddTag:
		if _, ok := valueobject.NormalizeTag(input.Tag); !ok {
			return nil, domain.NewValidationError("tag", domain.InvalidFormat,
				"invalid tag %q: use 1-50 lowercase letters, digits or hyphens", input.Tag)
		}
		changed, err = s.notes.AddTag(input.NoteID, input.Tag)
	case ActionRemoveTag:
		changed, err = s.notes.RemoveTag(input.NoteID, input.Tag)
	default:
		return nil, fmt.Errorf("%w: unknown action: %s", domain.ErrInvalidArguments, input.Action)
	}
	if err != nil {
		return nil, err
	}

	n, _ := s.notes.FindNote(input.NoteID)
	result := &EditNoteResult{Note: n, Changed: changed}
	if !changed {
		return result, nil
	}
	return result, s.persist(ctx)
}

func (s *Service) DeleteNote(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.notes.DeleteNote(id) {
		return fmt.Errorf("deleting note %s: %w", id, domain.ErrNoteNotFound)
	}
	return s.persist(ctx)
}

func (s *Service) NoteDetails(id string) (*entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes.FindNote(id)
	if !ok {
		return nil, fmt.Errorf("finding note %s: %w", id, domain.ErrNoteNotFound)
	}
	return n, nil
}

func (s *Service) NotesByTag(tag string) []*entity.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.NotesByTag(tag)
}

// ListTags returns every tag with its note count, most used first.
func (s *Service) ListTags() []aggregate.TagCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.notes.TagStatistics()
	tags := make([]aggregate.TagCount, 0, len(stats))
	for tag, count := range stats {
		tags = append(tags, aggregate.TagCount{Tag: tag, Count: count})
	}
	slices.SortFunc(tags, func(a, b aggregate.TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return tags
}

func (s *Service) ExportNotes(format aggregate.ExportFormat) (string, error) {
	if format == "" {
		format = aggregate.FormatJSON
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notes.Export(format)
}
