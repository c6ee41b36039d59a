package operations

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/pagination"
)

const (
	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 365
)

type ContactAction string

const (
	ActionAddPhone    ContactAction = "add_phone"
	ActionRemovePhone ContactAction = "remove_phone"
	ActionChangePhone ContactAction = "change_phone"
	ActionAddBirthday ContactAction = "add_birthday"
)

type AddContactInput struct {
	Name     string
	Phones   []string
	Birthday string
}

// AddContact validates the whole record before inserting it, so a bad
// phone or birthday leaves the address book untouched.
func (s *Service) AddContact(ctx context.Context, input AddContactInput) (*entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.book.Find(input.Name); exists {
		return nil, fmt.Errorf("adding contact %q: %w", input.Name, domain.ErrContactAlreadyExists)
	}

	record, err := entity.NewRecord(input.Name)
	if err != nil {
		return nil, err
	}
	for _, phone := range input.Phones {
		if err := record.AddPhone(phone); err != nil {
			return nil, err
		}
	}
	if input.Birthday != "" {
		b, err := valueobject.NewBirthday(input.Birthday, s.today())
		if err != nil {
			return nil, err
		}
		record.SetBirthday(b)
	}

	if err := s.book.Add(record); err != nil {
		return nil, err
	}
	return record.Clone(), s.persist(ctx)
}

func (s *Service) SearchContacts(query string) []*entity.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRecords(s.book.SearchContacts(query))
}

func (s *Service) ShowContacts(page, perPage int) ([]*entity.Record, *pagination.Info) {
	s.mu.Lock()
	defer s.mu.Unlock()

	params := pagination.NewParams(page, perPage)
	records := cloneRecords(s.book.Page(params))
	return records, pagination.NewInfo(params.Page, params.PerPage, s.book.Len())
}

type EditContactInput struct {
	Name     string
	Action   ContactAction
	Phone    string
	NewPhone string
	Birthday string
}

func (s *Service) EditContact(ctx context.Context, input EditContactInput) (*entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.book.Find(input.Name)
	if !ok {
		return nil, fmt.Errorf("editing contact %q: %w", input.Name, domain.ErrContactNotFound)
	}

	var err error
	switch input.Action {
	case ActionAddPhone:
		err = record.AddPhone(input.Phone)
	case ActionRemovePhone:
		err = record.RemovePhone(input.Phone)
	case ActionChangePhone:
		err = record.EditPhone(input.Phone, input.NewPhone)
	case ActionAddBirthday:
		var b valueobject.Birthday
		if b, err = valueobject.NewBirthday(input.Birthday, s.today()); err == nil {
			record.SetBirthday(b)
		}
	default:
		err = fmt.Errorf("%w: unknown action: %s", domain.ErrInvalidArguments, input.Action)
	}
	if err != nil {
		return nil, err
	}

	return record.Clone(), s.persist(ctx)
}

func (s *Service) DeleteContact(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.book.Delete(name) {
		return fmt.Errorf("deleting contact %q: %w", name, domain.ErrContactNotFound)
	}
	return s.persist(ctx)
}

func (s *Service) ContactDetails(name string) (*entity.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("finding contact %q: %w", name, domain.ErrContactNotFound)
	}
	return record.Clone(), nil
}

// UpcomingBirthdays looks days ahead of today, inclusive on both ends.
func (s *Service) UpcomingBirthdays(days int) ([]aggregate.UpcomingBirthday, error) {
	if days < 0 || days > MaxUpcomingDays {
		return nil, fmt.Errorf("%w: days must be between 0 and %d", domain.ErrInvalidArguments, MaxUpcomingDays)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.book.UpcomingBirthdays(s.today(), days), nil
}

func cloneRecords(records []*entity.Record) []*entity.Record {
	clones := make([]*entity.Record, len(records))
	for i, r := range records {
		clones[i] = r.Clone()
	}
	return clones
}
