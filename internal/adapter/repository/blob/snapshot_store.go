package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/storage"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
)

// SnapshotStore keeps contacts and notes as two JSON documents in a
// BlobStorage.
type SnapshotStore struct {
	blobs       storage.BlobStorage
	contactsKey string
	notesKey    string
	logger      *zap.Logger
	now         func() time.Time
}

// NewSnapshotStore derives the notes key from contactsKey when notesKey is
// empty: "addressbook.json" pairs with "addressbook_notes.json".
func NewSnapshotStore(blobs storage.BlobStorage, contactsKey, notesKey string, logger *zap.Logger) *SnapshotStore {
	if notesKey == "" {
		notesKey = NotesKeyFor(contactsKey)
	}
	return &SnapshotStore{
		blobs:       blobs,
		contactsKey: contactsKey,
		notesKey:    notesKey,
		logger:      logger,
		now:         time.Now,
	}
}

func NotesKeyFor(contactsKey string) string {
	if base, ok := strings.CutSuffix(contactsKey, ".json"); ok {
		return base + "_notes.json"
	}
	return contactsKey + "_notes"
}

// Load reads both documents independently. A corrupt document is replaced
// by an empty one and reported as ErrSnapshotCorrupt alongside the partial
// snapshot, so the intact document survives.
func (s *SnapshotStore) Load(ctx context.Context) (*repository.Snapshot, error) {
	snapshot := &repository.Snapshot{
		Contacts: aggregate.ContactsDocument{},
		Notes:    aggregate.NotesDocument{Notes: map[string]aggregate.NoteData{}},
	}

	var corrupt []error
	foundContacts, err := s.read(ctx, s.contactsKey, &snapshot.Contacts)
	if errors.Is(err, repository.ErrSnapshotCorrupt) {
		snapshot.Contacts = aggregate.ContactsDocument{}
		corrupt = append(corrupt, err)
	} else if err != nil {
		return nil, err
	}
	foundNotes, err := s.read(ctx, s.notesKey, &snapshot.Notes)
	if errors.Is(err, repository.ErrSnapshotCorrupt) {
		snapshot.Notes = aggregate.NotesDocument{}
		corrupt = append(corrupt, err)
	} else if err != nil {
		return nil, err
	}

	if snapshot.Contacts == nil {
		snapshot.Contacts = aggregate.ContactsDocument{}
	}
	if snapshot.Notes.Notes == nil {
		snapshot.Notes.Notes = map[string]aggregate.NoteData{}
	}
	if len(corrupt) > 0 {
		return snapshot, errors.Join(corrupt...)
	}
	if !foundContacts && !foundNotes {
		return nil, repository.ErrSnapshotNotFound
	}
	return snapshot, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snapshot *repository.Snapshot) error {
	contacts, err := json.MarshalIndent(snapshot.Contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding contacts: %w", err)
	}
	notes, err := json.MarshalIndent(snapshot.Notes, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding notes: %w", err)
	}

	if err := s.blobs.Write(ctx, s.contactsKey, contacts); err != nil {
		return fmt.Errorf("writing %s: %w", s.contactsKey, err)
	}
	if err := s.blobs.Write(ctx, s.notesKey, notes); err != nil {
		return fmt.Errorf("writing %s: %w", s.notesKey, err)
	}
	return nil
}

// read decodes key into v and reports whether the object existed. An
// undecodable object is quarantined before the next Save can overwrite it.
func (s *SnapshotStore) read(ctx context.Context, key string, v any) (bool, error) {
	data, err := s.blobs.Read(ctx, key)
	if errors.Is(err, storage.ErrObjectNotFound) {
		return false, nil
	}
	if errors.Is(err, storage.ErrObjectCorrupt) {
		s.quarantine(ctx, key, nil)
		return false, fmt.Errorf("reading %s: %w: %v", key, repository.ErrSnapshotCorrupt, err)
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.quarantine(ctx, key, data)
		return false, fmt.Errorf("decoding %s: %w: %v", key, repository.ErrSnapshotCorrupt, err)
	}
	return true, nil
}

// quarantine sets key aside. Backends without a native move get a copy under
// "<key>.corrupt-<timestamp>" followed by a delete, which needs the raw data.
func (s *SnapshotStore) quarantine(ctx context.Context, key string, data []byte) {
	var moved string
	var err error

	switch q, ok := s.blobs.(storage.Quarantiner); {
	case ok:
		moved, err = q.Quarantine(ctx, key)
	case data != nil:
		moved = fmt.Sprintf("%s.corrupt-%s", key, s.now().UTC().Format("20060102T150405"))
		if err = s.blobs.Write(ctx, moved, data); err == nil {
			err = s.blobs.Delete(ctx, key)
		}
	default:
		s.logger.Warn("corrupt object left in place", zap.String("key", key))
		return
	}

	if err != nil {
		s.logger.Error("failed to quarantine corrupt object", zap.String("key", key), zap.Error(err))
		return
	}
	s.logger.Warn("quarantined corrupt object", zap.String("key", key), zap.String("moved_to", moved))
}
