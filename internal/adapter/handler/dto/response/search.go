package response

import (
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

type GlobalSearchResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Notes    []NoteResponse    `json:"notes"`
}

type StatisticsResponse struct {
	TotalContacts         int           `json:"total_contacts"`
	TotalNotes            int           `json:"total_notes"`
	ContactsWithBirthdays int           `json:"contacts_with_birthdays"`
	ContactsWithPhones    int           `json:"contacts_with_phones"`
	NotesWithTags         int           `json:"notes_with_tags"`
	TotalTags             int           `json:"total_tags"`
	AvgNotesPerTag        float64       `json:"avg_notes_per_tag"`
	MostUsedTags          []TagResponse `json:"most_used_tags"`
	NotesThisWeek         int           `json:"notes_this_week"`
	NotesThisMonth        int           `json:"notes_this_month"`
	ContentLengthAvg      float64       `json:"content_length_avg"`
	ContentLengthMax      int           `json:"content_length_max"`
	ContentLengthMin      int           `json:"content_length_min"`
}

func GlobalSearchFromResult(r operations.GlobalSearchResult) GlobalSearchResponse {
	return GlobalSearchResponse{
		Contacts: ContactsFromRecords(r.Contacts),
		Notes:    NotesFromEntities(r.Notes),
	}
}

func StatisticsFromResult(s operations.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalContacts:         s.Contacts.TotalContacts,
		TotalNotes:            s.Notes.TotalNotes,
		ContactsWithBirthdays: s.Contacts.WithBirthdays,
		ContactsWithPhones:    s.Contacts.WithPhones,
		NotesWithTags:         s.NotesWithTags,
		TotalTags:             s.Notes.TotalTags,
		AvgNotesPerTag:        s.Notes.AvgNotesPerTag,
		MostUsedTags:          TagsFromCounts(s.Notes.MostUsedTags),
		NotesThisWeek:         s.Notes.NotesThisWeek,
		NotesThisMonth:        s.Notes.NotesThisMonth,
		ContentLengthAvg:      s.Notes.ContentLengthAvg,
		ContentLengthMax:      s.Notes.ContentLengthMax,
		ContentLengthMin:      s.Notes.ContentLengthMin,
	}
}
