package operations

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository"
	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
)

const defaultStorageTimeout = 5 * time.Second

type Config struct {
	IDStrategy     aggregate.IDStrategy
	SearchMode     entity.SearchMode
	StorageTimeout time.Duration
	Now            func() time.Time
}

// Service owns the address book and the notes. Every mutation saves the full
// snapshot; a failed save keeps the in-memory change and is reported as an
// error wrapping domain.ErrPersistence next to a valid result.
type Service struct {
	mu         sync.Mutex
	store      repository.SnapshotStore
	book       *aggregate.AddressBook
	notes      *aggregate.NotesManager
	strategy   aggregate.IDStrategy
	searchMode entity.SearchMode
	timeout    time.Duration
	now        func() time.Time
	logger     *zap.Logger
	unsaved    bool
}

func NewService(store repository.SnapshotStore, cfg Config, logger *zap.Logger) *Service {
	if !cfg.SearchMode.IsValid() {
		cfg.SearchMode = entity.SearchTitleContentTags
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = defaultStorageTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{
		store:      store,
		book:       aggregate.NewAddressBook(),
		notes:      aggregate.NewNotesManager(cfg.IDStrategy),
		strategy:   cfg.IDStrategy,
		searchMode: cfg.SearchMode,
		timeout:    cfg.StorageTimeout,
		now:        cfg.Now,
		logger:     logger,
	}
}

type DataSummary struct {
	Contacts int
	Notes    int
}

// Load replaces the in-memory state with the stored snapshot. A missing or
// corrupt snapshot leaves the affected part empty; any other storage error
// is returned so a broken backend is never overwritten with empty state.
func (s *Service) Load(ctx context.Context) (DataSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snapshot, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, repository.ErrSnapshotNotFound):
		s.logger.Info("no stored data found, starting empty")
		return s.summary(), nil
	case errors.Is(err, repository.ErrSnapshotCorrupt) && snapshot != nil:
		s.logger.Warn("stored data is corrupt, continuing with what could be read", zap.Error(err))
	case err != nil:
		return DataSummary{}, fmt.Errorf("loading snapshot: %w", err)
	}

	book, err := aggregate.AddressBookFromDocument(snapshot.Contacts)
	if err != nil {
		s.logger.Warn("discarding unreadable contacts", zap.Error(err))
		book = aggregate.NewAddressBook()
	}
	notes, err := aggregate.NotesManagerFromDocument(snapshot.Notes, s.strategy)
	if err != nil {
		s.logger.Warn("discarding unreadable notes", zap.Error(err))
		notes = aggregate.NewNotesManager(s.strategy)
	}
	s.book, s.notes = book, notes

	summary := s.summary()
	s.logger.Info("data loaded", zap.Int("contacts", summary.Contacts), zap.Int("notes", summary.Notes))
	return summary, nil
}

func (s *Service) Summary() DataSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary()
}

func (s *Service) summary() DataSummary {
	return DataSummary{Contacts: s.book.Len(), Notes: s.notes.Len()}
}

// persist must be called with mu held.
func (s *Service) persist(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snapshot := &repository.Snapshot{
		Contacts: s.book.ToDocument(),
		Notes:    s.notes.ToDocument(),
	}
	if err := s.store.Save(ctx, snapshot); err != nil {
		s.unsaved = true
		s.logger.Warn("failed to save data", zap.Error(err))
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	s.unsaved = false
	return nil
}

// Flush retries the save when the last one failed. It does nothing when the
// stored snapshot is current.
func (s *Service) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.unsaved {
		return nil
	}
	return s.persist(ctx)
}

func (s *Service) today() time.Time {
	return s.now()
}
