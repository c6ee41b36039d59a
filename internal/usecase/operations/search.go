package operations

import (
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
)

type GlobalSearchResult struct {
	Contacts []*entity.Record
	Notes    []*entity.Note
}

// GlobalSearch runs the contact search and the note search in the
// configured mode with the same query.
func (s *Service) GlobalSearch(query string) GlobalSearchResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return GlobalSearchResult{
		Contacts: cloneRecords(s.book.SearchContacts(query)),
		Notes:    s.notes.SearchNotes(query, s.searchMode),
	}
}

type Statistics struct {
	Contacts      aggregate.ContactStats
	Notes         aggregate.NotesStatistics
	NotesWithTags int
}

func (s *Service) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Statistics{
		Contacts: s.book.Stats(),
		Notes:    s.notes.Statistics(s.today()),
	}
	for _, n := range s.notes.All() {
		if len(n.Tags) > 0 {
			stats.NotesWithTags++
		}
	}
	return stats
}
