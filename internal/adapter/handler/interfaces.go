package handler

import (
	"context"

	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/pagination"
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type ContactService interface {
	AddContact(ctx context.Context, input operations.AddContactInput) (*entity.Record, error)
	SearchContacts(query string) []*entity.Record
	ShowContacts(page, perPage int) ([]*entity.Record, *pagination.Info)
	EditContact(ctx context.Context, input operations.EditContactInput) (*entity.Record, error)
	DeleteContact(ctx context.Context, name string) error
	ContactDetails(name string) (*entity.Record, error)
	UpcomingBirthdays(days int) ([]aggregate.UpcomingBirthday, error)
}

type NoteService interface {
	AddNote(ctx context.Context, input operations.AddNoteInput) (*entity.Note, error)
	SearchNotes(query string, mode entity.SearchMode) ([]*entity.Note, error)
	ShowNotes(input operations.ShowNotesInput) ([]*entity.Note, error)
	EditNote(ctx context.Context, input operations.EditNoteInput) (*operations.EditNoteResult, error)
	DeleteNote(ctx context.Context, id string) error
	NoteDetails(id string) (*entity.Note, error)
	NotesByTag(tag string) []*entity.Note
	ListTags() []aggregate.TagCount
	ExportNotes(format aggregate.ExportFormat) (string, error)
}

type SearchService interface {
	GlobalSearch(query string) operations.GlobalSearchResult
	Statistics() operations.Statistics
}
