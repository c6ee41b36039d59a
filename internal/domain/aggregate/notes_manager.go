package aggregate

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
)

const sequencePrefix = "note_"

// maxSequence bounds sequence numbers taken from stored ids so the counter
// cannot overflow.
const maxSequence = 1_000_000_000

// IDStrategy decides how new note ids are minted.
type IDStrategy string

const (
	IDSequence IDStrategy = "sequence"
	IDUUID     IDStrategy = "uuid"
)

type SortField string

const (
	SortByCreated  SortField = "created"
	SortByUpdated  SortField = "updated"
	SortByTitle    SortField = "title"
	SortByTagCount SortField = "tag_count"
)

func (f SortField) IsValid() bool {
	switch f {
	case SortByCreated, SortByUpdated, SortByTitle, SortByTagCount:
		return true
	}
	return false
}

// NoteUpdate carries the fields to change; nil fields are left alone.
type NoteUpdate struct {
	Title   *string
	Content *string
	Tags    *[]string
}

type NoteFilter struct {
	HasTags          []string
	CreatedAfter     *time.Time
	CreatedBefore    *time.Time
	MinContentLength int
	TitleContains    string
}

type TagCount struct {
	Tag   string
	Count int
}

type NotesStatistics struct {
	TotalNotes       int
	TotalTags        int
	AvgNotesPerTag   float64
	MostUsedTags     []TagCount
	NotesThisWeek    int
	NotesThisMonth   int
	ContentLengthAvg float64
	ContentLengthMax int
	ContentLengthMin int
}

// NotesManager owns notes and the tag index. The index always equals the
// inverse of the notes' tag lists, so notes only leave the manager as copies.
type NotesManager struct {
	notes    map[string]*entity.Note
	order    []string
	tagIndex map[string]map[string]struct{}
	nextID   int
	strategy IDStrategy
}

func NewNotesManager(strategy IDStrategy) *NotesManager {
	if strategy != IDUUID {
		strategy = IDSequence
	}
	return &NotesManager{
		notes:    make(map[string]*entity.Note),
		tagIndex: make(map[string]map[string]struct{}),
		nextID:   1,
		strategy: strategy,
	}
}

func (m *NotesManager) CreateNote(title, content string, tags []string) (string, error) {
	n, err := entity.NewNote("", title, content, tags)
	if err != nil {
		return "", err
	}
	n.ID = m.generateID()
	m.insert(n)
	return n.ID, nil
}

func (m *NotesManager) FindNote(id string) (*entity.Note, bool) {
	n, ok := m.notes[id]
	if !ok {
		return nil, false
	}
	return n.Clone(), true
}

func (m *NotesManager) Len() int {
	return len(m.notes)
}

// All returns copies of every note in insertion order.
func (m *NotesManager) All() []*entity.Note {
	return m.collect(func(*entity.Note) bool { return true })
}

func (m *NotesManager) UpdateNote(id string, upd NoteUpdate) error {
	return m.mutate(id, func(n *entity.Note) error {
		if upd.Title != nil {
			if err := n.UpdateTitle(*upd.Title); err != nil {
				return err
			}
		}
		if upd.Content != nil {
			if err := n.UpdateContent(*upd.Content); err != nil {
				return err
			}
		}
		if upd.Tags != nil {
			n.SetTags(*upd.Tags)
		}
		return nil
	})
}

func (m *NotesManager) UpdateTitle(id, title string) error {
	return m.mutate(id, func(n *entity.Note) error { return n.UpdateTitle(title) })
}

func (m *NotesManager) UpdateContent(id, content string) error {
	return m.mutate(id, func(n *entity.Note) error { return n.UpdateContent(content) })
}

func (m *NotesManager) AddTag(id, tag string) (bool, error) {
	var added bool
	err := m.mutate(id, func(n *entity.Note) error {
		added = n.AddTag(tag)
		return nil
	})
	return added, err
}

func (m *NotesManager) RemoveTag(id, tag string) (bool, error) {
	var removed bool
	err := m.mutate(id, func(n *entity.Note) error {
		removed = n.RemoveTag(tag)
		return nil
	})
	return removed, err
}

func (m *NotesManager) DeleteNote(id string) bool {
	n, ok := m.notes[id]
	if !ok {
		return false
	}
	m.unindex(n)
	delete(m.notes, id)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == id })
	return true
}

// SearchNotes matches query in the given mode. Ranked results are ordered by
// SearchScore, the other modes keep insertion order.
func (m *NotesManager) SearchNotes(query string, mode entity.SearchMode) []*entity.Note {
	results := m.collect(func(n *entity.Note) bool { return n.Matches(query, mode) })
	if mode == entity.SearchRanked {
		slices.SortStableFunc(results, func(a, b *entity.Note) int {
			return cmp.Compare(b.SearchScore(query), a.SearchScore(query))
		})
	}
	return results
}

func (m *NotesManager) NotesByTag(tag string) []*entity.Note {
	norm, _ := valueobject.NormalizeTag(tag)
	ids, ok := m.tagIndex[norm]
	if !ok {
		return []*entity.Note{}
	}
	return m.collect(func(n *entity.Note) bool {
		_, hit := ids[n.ID]
		return hit
	})
}

// SearchByTags returns notes carrying any (or, with matchAll, every) of the
// tags, most overlapping first.
func (m *NotesManager) SearchByTags(tags []string, matchAll bool) []*entity.Note {
	wanted := make([]string, 0, len(tags))
	for _, t := range tags {
		norm, _ := valueobject.NormalizeTag(t)
		wanted = append(wanted, norm)
	}
	slices.Sort(wanted)
	wanted = slices.Compact(wanted)

	overlap := func(n *entity.Note) int {
		count := 0
		for _, t := range wanted {
			if n.HasTag(t) {
				count++
			}
		}
		return count
	}

	results := m.collect(func(n *entity.Note) bool {
		if matchAll {
			for _, t := range wanted {
				if !n.HasTag(t) {
					return false
				}
			}
			return true
		}
		return overlap(n) > 0
	})
	slices.SortStableFunc(results, func(a, b *entity.Note) int {
		return cmp.Compare(overlap(b), overlap(a))
	})
	return results
}

func (m *NotesManager) AllTags() []string {
	return slices.Sorted(maps.Keys(m.tagIndex))
}

// TagStatistics maps each tag to the number of notes carrying it.
func (m *NotesManager) TagStatistics() map[string]int {
	stats := make(map[string]int, len(m.tagIndex))
	for tag, ids := range m.tagIndex {
		stats[tag] = len(ids)
	}
	return stats
}

// TagIndex returns a copy of the index with note ids sorted per tag.
func (m *NotesManager) TagIndex() map[string][]string {
	index := make(map[string][]string, len(m.tagIndex))
	for tag, ids := range m.tagIndex {
		index[tag] = slices.Sorted(maps.Keys(ids))
	}
	return index
}

// RenameTag moves oldTag to newTag on every note carrying it and returns
// how many notes changed. An invalid newTag changes nothing.
func (m *NotesManager) RenameTag(oldTag, newTag string) int {
	oldNorm, _ := valueobject.NormalizeTag(oldTag)
	newNorm, ok := valueobject.NormalizeTag(newTag)
	if !ok {
		return 0
	}
	ids := m.idsForTag(oldNorm)
	for _, id := range ids {
		_ = m.mutate(id, func(n *entity.Note) error {
			n.RemoveTag(oldNorm)
			n.AddTag(newNorm)
			return nil
		})
	}
	return len(ids)
}

func (m *NotesManager) DeleteTag(tag string) int {
	norm, _ := valueobject.NormalizeTag(tag)
	ids := m.idsForTag(norm)
	for _, id := range ids {
		_ = m.mutate(id, func(n *entity.Note) error {
			n.RemoveTag(norm)
			return nil
		})
	}
	return len(ids)
}

// RecentNotes orders by last modification, newest first. A non-positive
// limit returns every note.
func (m *NotesManager) RecentNotes(limit int) []*entity.Note {
	notes := m.SortNotes(SortByUpdated, true)
	if limit > 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

// SortNotes sorts a copy of all notes. Equal keys keep insertion order in
// both directions.
func (m *NotesManager) SortNotes(by SortField, reverse bool) []*entity.Note {
	var key func(a, b *entity.Note) int
	switch by {
	case SortByUpdated:
		key = func(a, b *entity.Note) int { return a.LastModified().Compare(b.LastModified()) }
	case SortByTitle:
		key = func(a, b *entity.Note) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	case SortByTagCount:
		key = func(a, b *entity.Note) int { return cmp.Compare(len(a.Tags), len(b.Tags)) }
	default:
		key = func(a, b *entity.Note) int { return a.CreatedAt.Compare(b.CreatedAt) }
	}

	notes := m.All()
	slices.SortStableFunc(notes, func(a, b *entity.Note) int {
		if reverse {
			return key(b, a)
		}
		return key(a, b)
	})
	return notes
}

func (m *NotesManager) FilterNotes(f NoteFilter) []*entity.Note {
	titleQuery := strings.ToLower(f.TitleContains)
	return m.collect(func(n *entity.Note) bool {
		for _, t := range f.HasTags {
			if !n.HasTag(t) {
				return false
			}
		}
		created := valueobject.DateOf(n.CreatedAt)
		if f.CreatedAfter != nil && !created.After(valueobject.DateOf(*f.CreatedAfter)) {
			return false
		}
		if f.CreatedBefore != nil && !created.Before(valueobject.DateOf(*f.CreatedBefore)) {
			return false
		}
		if len([]rune(n.Content)) < f.MinContentLength {
			return false
		}
		return strings.Contains(strings.ToLower(n.Title), titleQuery)
	})
}

// SearchByDateRange returns notes created on a day within [start, end],
// oldest first.
func (m *NotesManager) SearchByDateRange(start, end time.Time) []*entity.Note {
	from, to := valueobject.DateOf(start), valueobject.DateOf(end)
	results := m.collect(func(n *entity.Note) bool {
		created := valueobject.DateOf(n.CreatedAt)
		return !created.Before(from) && !created.After(to)
	})
	slices.SortStableFunc(results, func(a, b *entity.Note) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return results
}

func (m *NotesManager) Statistics(now time.Time) NotesStatistics {
	stats := NotesStatistics{
		TotalNotes: len(m.notes),
		TotalTags:  len(m.tagIndex),
	}
	if stats.TotalTags > 0 {
		stats.AvgNotesPerTag = float64(stats.TotalNotes) / float64(stats.TotalTags)
	}

	for tag, ids := range m.tagIndex {
		stats.MostUsedTags = append(stats.MostUsedTags, TagCount{Tag: tag, Count: len(ids)})
	}
	slices.SortFunc(stats.MostUsedTags, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	if len(stats.MostUsedTags) > 10 {
		stats.MostUsedTags = stats.MostUsedTags[:10]
	}

	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)
	total := 0
	for i, id := range m.order {
		n := m.notes[id]
		if n.CreatedAt.After(weekAgo) {
			stats.NotesThisWeek++
		}
		if n.CreatedAt.After(monthAgo) {
			stats.NotesThisMonth++
		}
		length := len([]rune(n.Content))
		total += length
		if i == 0 || length > stats.ContentLengthMax {
			stats.ContentLengthMax = length
		}
		if i == 0 || length < stats.ContentLengthMin {
			stats.ContentLengthMin = length
		}
	}
	if stats.TotalNotes > 0 {
		stats.ContentLengthAvg = float64(total) / float64(stats.TotalNotes)
	}
	return stats
}

func (m *NotesManager) generateID() string {
	if m.strategy == IDUUID {
		return uuid.Must(uuid.NewV7()).String()
	}
	for {
		id := fmt.Sprintf("%s%04d", sequencePrefix, m.nextID)
		m.nextID++
		if _, taken := m.notes[id]; !taken {
			return id
		}
	}
}

// insert adds n and keeps the sequence counter ahead of any sequence id.
func (m *NotesManager) insert(n *entity.Note) {
	m.notes[n.ID] = n
	m.order = append(m.order, n.ID)
	m.index(n)
	if num, ok := sequenceNumber(n.ID); ok && num >= m.nextID {
		m.nextID = num + 1
	}
}

// mutate applies fn to a copy of the stored note and swaps it in only when fn
// succeeds, so a failed update leaves the note and the tag index untouched.
func (m *NotesManager) mutate(id string, fn func(n *entity.Note) error) error {
	n, ok := m.notes[id]
	if !ok {
		return fmt.Errorf("note %s: %w", id, domain.ErrNoteNotFound)
	}
	draft := n.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	m.unindex(n)
	m.notes[id] = draft
	m.index(draft)
	return nil
}

func (m *NotesManager) index(n *entity.Note) {
	for _, tag := range n.Tags {
		ids, ok := m.tagIndex[tag]
		if !ok {
			ids = make(map[string]struct{})
			m.tagIndex[tag] = ids
		}
		ids[n.ID] = struct{}{}
	}
}

func (m *NotesManager) unindex(n *entity.Note) {
	for _, tag := range n.Tags {
		ids := m.tagIndex[tag]
		delete(ids, n.ID)
		if len(ids) == 0 {
			delete(m.tagIndex, tag)
		}
	}
}

func (m *NotesManager) idsForTag(tag string) []string {
	ids := m.tagIndex[tag]
	result := make([]string, 0, len(ids))
	for _, id := range m.order {
		if _, ok := ids[id]; ok {
			result = append(result, id)
		}
	}
	return result
}

func (m *NotesManager) collect(keep func(n *entity.Note) bool) []*entity.Note {
	results := []*entity.Note{}
	for _, id := range m.order {
		if n := m.notes[id]; keep(n) {
			results = append(results, n.Clone())
		}
	}
	return results
}

func sequenceNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, sequencePrefix)
	if !ok {
		return 0, false
	}
	num, err := strconv.Atoi(rest)
	if err != nil || num < 0 || num >= maxSequence {
		return 0, false
	}
	return num, true
}
