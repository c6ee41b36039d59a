package repository

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

import (
	"context"
	"errors"

	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotCorrupt  = errors.New("snapshot corrupt")
)

// Snapshot is the full persisted state: every contact and every note.
type Snapshot struct {
	Contacts aggregate.ContactsDocument
	Notes    aggregate.NotesDocument
}

// SnapshotStore persists the whole state at once. Load may return a partial
// snapshot together with ErrSnapshotCorrupt when only part of the state
// could be decoded.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snapshot *Snapshot) error
}
