package aggregate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
)

// TimestampLayout is how note timestamps are written in documents.
const TimestampLayout = "2006-01-02 15:04:05.000000"

type ContactData struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

// ContactsDocument maps a normalized name key to its contact.
type ContactsDocument map[string]ContactData

type NoteData struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt *string  `json:"updated_at"`
}

type NotesDocument struct {
	Notes  map[string]NoteData `json:"notes"`
	NextID int                 `json:"next_id"`
}

func (b *AddressBook) ToDocument() ContactsDocument {
	doc := make(ContactsDocument, len(b.records))
	for key, r := range b.records {
		data := ContactData{
			Name:   r.Name.String(),
			Phones: r.PhoneStrings(),
		}
		if r.Birthday != nil {
			raw := r.Birthday.String()
			data.Birthday = &raw
		}
		doc[key] = data
	}
	return doc
}

// AddressBookFromDocument re-validates every field. Records are inserted in
// key order so the result does not depend on map iteration.
func AddressBookFromDocument(doc ContactsDocument) (*AddressBook, error) {
	book := NewAddressBook()
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		data := doc[key]
		r, err := entity.NewRecord(data.Name)
		if err != nil {
			return nil, fmt.Errorf("restoring contact %q: %w", key, err)
		}
		for _, phone := range data.Phones {
			if err := r.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("restoring contact %q: %w", key, err)
			}
		}
		if data.Birthday != nil && *data.Birthday != "" {
			if err := r.AddBirthday(*data.Birthday); err != nil {
				return nil, fmt.Errorf("restoring contact %q: %w", key, err)
			}
		}
		if err := book.Add(r); err != nil {
			return nil, fmt.Errorf("restoring contact %q: %w", key, err)
		}
	}
	return book, nil
}

func (b *AddressBook) ToJSON() ([]byte, error) {
	return marshalJSON(b.ToDocument())
}

func AddressBookFromJSON(data []byte) (*AddressBook, error) {
	var doc ContactsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding contacts: %w", err)
	}
	return AddressBookFromDocument(doc)
}

func (m *NotesManager) ToDocument() NotesDocument {
	doc := NotesDocument{
		Notes:  make(map[string]NoteData, len(m.notes)),
		NextID: m.nextID,
	}
	for id, n := range m.notes {
		doc.Notes[id] = noteToData(n)
	}
	return doc
}

// NotesManagerFromDocument restores notes ordered by creation time and
// advances the id sequence past every persisted sequence id.
func NotesManagerFromDocument(doc NotesDocument, strategy IDStrategy) (*NotesManager, error) {
	m := NewNotesManager(strategy)

	notes := make([]*entity.Note, 0, len(doc.Notes))
	for key, data := range doc.Notes {
		if data.ID == "" {
			data.ID = key
		}
		n, err := noteFromData(data)
		if err != nil {
			return nil, fmt.Errorf("restoring note %q: %w", key, err)
		}
		notes = append(notes, n)
	}
	slices.SortFunc(notes, func(a, b *entity.Note) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	for _, n := range notes {
		m.insert(n)
	}
	if doc.NextID < maxSequence {
		m.nextID = max(m.nextID, doc.NextID)
	}
	return m, nil
}

func (m *NotesManager) ToJSON() ([]byte, error) {
	return marshalJSON(m.ToDocument())
}

func NotesManagerFromJSON(data []byte, strategy IDStrategy) (*NotesManager, error) {
	var doc NotesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding notes: %w", err)
	}
	return NotesManagerFromDocument(doc, strategy)
}

func noteToData(n *entity.Note) NoteData {
	data := NoteData{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      slices.Clone(n.Tags),
		CreatedAt: n.CreatedAt.Format(TimestampLayout),
	}
	if data.Tags == nil {
		data.Tags = []string{}
	}
	if n.UpdatedAt != nil {
		u := n.UpdatedAt.Format(TimestampLayout)
		data.UpdatedAt = &u
	}
	return data
}

func noteFromData(data NoteData) (*entity.Note, error) {
	createdAt, err := parseTimestamp(data.CreatedAt)
	if err != nil {
		return nil, err
	}
	var updatedAt *time.Time
	if data.UpdatedAt != nil && *data.UpdatedAt != "" {
		u, err := parseTimestamp(*data.UpdatedAt)
		if err != nil {
			return nil, err
		}
		updatedAt = &u
	}
	return entity.RestoreNote(data.ID, data.Title, data.Content, data.Tags, createdAt, updatedAt)
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", raw, err)
	}
	return t, nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

