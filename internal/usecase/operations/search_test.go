package operations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

func TestService_GlobalSearch(t *testing.T) {
	ctx := context.Background()
	svc := newSavingService(t)
	_, err := svc.AddContact(ctx, operations.AddContactInput{Name: "Maria Project"})
	require.NoError(t, err)
	addNote(t, svc, "Project plan", "milestones")
	addNote(t, svc, "Unrelated", "nothing", "project")

	result := svc.GlobalSearch("project")

	require.Len(t, result.Contacts, 1)
	assert.Equal(t, "Maria Project", result.Contacts[0].Name.String())
	require.Len(t, result.Notes, 2)
	assert.Equal(t, "Project plan", result.Notes[0].Title)
}

func TestService_Statistics(t *testing.T) {
	ctx := context.Background()
	svc := newSavingService(t)
	_, err := svc.AddContact(ctx, operations.AddContactInput{Name: "John", Phones: []string{"1234567890"}, Birthday: "01.01.1990"})
	require.NoError(t, err)
	_, err = svc.AddContact(ctx, operations.AddContactInput{Name: "Ann"})
	require.NoError(t, err)
	addNote(t, svc, "Tagged", "12345", "work")
	addNote(t, svc, "Plain", "1")

	stats := svc.Statistics()

	assert.Equal(t, 2, stats.Contacts.TotalContacts)
	assert.Equal(t, 1, stats.Contacts.WithPhones)
	assert.Equal(t, 1, stats.Contacts.WithBirthdays)
	assert.Equal(t, 2, stats.Notes.TotalNotes)
	assert.Equal(t, 1, stats.Notes.TotalTags)
	assert.Equal(t, 5, stats.Notes.ContentLengthMax)
	assert.Equal(t, 1, stats.Notes.ContentLengthMin)
	assert.Equal(t, 1, stats.NotesWithTags)
}
