package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/repository"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
)

// SnapshotStore keeps contacts and notes in relational tables. Save
// replaces everything inside one transaction.
type SnapshotStore struct {
	pool *pgxpool.Pool
}

func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

func (s *SnapshotStore) Load(ctx context.Context) (*repository.Snapshot, error) {
	contacts, err := s.loadContacts(ctx)
	if err != nil {
		return nil, err
	}
	notes, err := s.loadNotes(ctx)
	if err != nil {
		return nil, err
	}

	var nextID int
	err = s.pool.QueryRow(ctx, `SELECT next_id FROM note_sequence WHERE id = 1`).Scan(&nextID)
	hasSequence := true
	if errors.Is(err, pgx.ErrNoRows) {
		hasSequence = false
	} else if err != nil {
		return nil, fmt.Errorf("querying note sequence: %w", err)
	}

	if len(contacts) == 0 && len(notes) == 0 && !hasSequence {
		return nil, repository.ErrSnapshotNotFound
	}

	return &repository.Snapshot{
		Contacts: contacts,
		Notes:    aggregate.NotesDocument{Notes: notes, NextID: nextID},
	}, nil
}

func (s *SnapshotStore) Save(ctx context.Context, snapshot *repository.Snapshot) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM notes`); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	keys := make([]string, 0, len(snapshot.Contacts))
	for key := range snapshot.Contacts {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	contactRows := make([][]any, 0, len(keys))
	for position, key := range keys {
		c := snapshot.Contacts[key]
		phones := c.Phones
		if phones == nil {
			phones = []string{}
		}
		contactRows = append(contactRows, []any{key, c.Name, phones, c.Birthday, position})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"contacts"},
		[]string{"key", "name", "phones", "birthday", "position"},
		pgx.CopyFromRows(contactRows),
	); err != nil {
		return fmt.Errorf("inserting contacts: %w", err)
	}

	noteRows := make([][]any, 0, len(snapshot.Notes.Notes))
	for id, n := range snapshot.Notes.Notes {
		createdAt, err := parseTimestamp(n.CreatedAt)
		if err != nil {
			return fmt.Errorf("note %s: %w", id, err)
		}
		var updatedAt *time.Time
		if n.UpdatedAt != nil {
			u, err := parseTimestamp(*n.UpdatedAt)
			if err != nil {
				return fmt.Errorf("note %s: %w", id, err)
			}
			updatedAt = &u
		}
		tags := n.Tags
		if tags == nil {
			tags = []string{}
		}
		noteRows = append(noteRows, []any{id, n.Title, n.Content, tags, createdAt, updatedAt})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"notes"},
		[]string{"id", "title", "content", "tags", "created_at", "updated_at"},
		pgx.CopyFromRows(noteRows),
	); err != nil {
		return fmt.Errorf("inserting notes: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO note_sequence (id, next_id) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET next_id = EXCLUDED.next_id
	`, snapshot.Notes.NextID)
	if err != nil {
		return fmt.Errorf("updating note sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *SnapshotStore) loadContacts(ctx context.Context) (aggregate.ContactsDocument, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, name, phones, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := aggregate.ContactsDocument{}
	for rows.Next() {
		var key string
		var c aggregate.ContactData
		if err := rows.Scan(&key, &c.Name, &c.Phones, &c.Birthday); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts[key] = c
	}
	return contacts, rows.Err()
}

func (s *SnapshotStore) loadNotes(ctx context.Context) (map[string]aggregate.NoteData, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, title, content, tags, created_at, updated_at FROM notes`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	notes := map[string]aggregate.NoteData{}
	for rows.Next() {
		var n aggregate.NoteData
		var createdAt time.Time
		var updatedAt *time.Time
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Tags, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		n.CreatedAt = createdAt.UTC().Format(aggregate.TimestampLayout)
		if updatedAt != nil {
			u := updatedAt.UTC().Format(aggregate.TimestampLayout)
			n.UpdatedAt = &u
		}
		notes[n.ID] = n
	}
	return notes, rows.Err()
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(aggregate.TimestampLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, err)
	}
	return t, nil
}
