package aggregate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/pagination"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newRecord(t *testing.T, name string, phones ...string) *entity.Record {
	t.Helper()
	r, err := entity.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func withBirthday(t *testing.T, r *entity.Record, raw string) *entity.Record {
	t.Helper()
	b, err := valueobject.NewBirthday(raw, date(2024, time.January, 1))
	require.NoError(t, err)
	r.SetBirthday(b)
	return r
}

func TestAddressBook_AddFind(t *testing.T) {
	book := aggregate.NewAddressBook()

	require.NoError(t, book.Add(newRecord(t, "John Doe", "123-456-7890")))

	r, ok := book.Find("john doe")
	require.True(t, ok)
	assert.Equal(t, []string{"1234567890"}, r.PhoneStrings())

	err := book.Add(newRecord(t, "John Doe"))
	require.ErrorIs(t, err, domain.ErrContactAlreadyExists)

	err = book.Add(newRecord(t, "  JOHN DOE "))
	require.ErrorIs(t, err, domain.ErrContactAlreadyExists)
	assert.Equal(t, 1, book.Len())
}

func TestAddressBook_Delete(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "Anna")))

	assert.True(t, book.Delete("ANNA"))
	assert.False(t, book.Delete("Anna"))

	_, ok := book.Find("anna")
	assert.False(t, ok)
	assert.Zero(t, book.Len())
}

func TestAddressBook_SearchByName(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "Johnny")))
	require.NoError(t, book.Add(newRecord(t, "John")))
	require.NoError(t, book.Add(newRecord(t, "Mary")))

	results := book.SearchByName("JOHN")

	require.Len(t, results, 2)
	assert.Equal(t, "John", results[0].Name.String())
	assert.Equal(t, "Johnny", results[1].Name.String())
}

func TestAddressBook_SearchByPhone(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "John", "1111111111")))
	require.NoError(t, book.Add(newRecord(t, "Mary", "2222222222")))

	r, ok := book.SearchByPhone("(222) 222-2222")
	require.True(t, ok)
	assert.Equal(t, "Mary", r.Name.String())

	_, ok = book.SearchByPhone("222")
	assert.False(t, ok)
	_, ok = book.SearchByPhone("no digits")
	assert.False(t, ok)
}

func TestAddressBook_SearchContacts(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "John", "1111111111")))
	require.NoError(t, book.Add(newRecord(t, "Mary", "2222222222")))

	t.Run("by name", func(t *testing.T) {
		results := book.SearchContacts("mar")
		require.Len(t, results, 1)
		assert.Equal(t, "Mary", results[0].Name.String())
	})

	t.Run("by phone", func(t *testing.T) {
		results := book.SearchContacts("1111111111")
		require.Len(t, results, 1)
		assert.Equal(t, "John", results[0].Name.String())
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, book.SearchContacts("zed"))
	})
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, aggregate.Similarity("john", "john"), 1e-9)
	assert.InDelta(t, 4.0/6.0, aggregate.Similarity("john", "johnny"), 1e-9)
	assert.InDelta(t, 0.0, aggregate.Similarity("", ""), 1e-9)
	assert.InDelta(t, 0.0, aggregate.Similarity("abc", "xyz"), 1e-9)
}

func TestAddressBook_UpcomingBirthdays(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "John"), "15.06.1990")))
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "Mary"), "11.06.1985")))
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "Old"), "01.01.1970")))
	require.NoError(t, book.Add(newRecord(t, "Nobody")))

	today := date(2024, time.June, 10)

	t.Run("within seven days", func(t *testing.T) {
		upcoming := book.UpcomingBirthdays(today, 7)

		require.Len(t, upcoming, 2)
		assert.Equal(t, "Mary", upcoming[0].Name)
		assert.Equal(t, 1, upcoming[0].DaysUntil)
		assert.Equal(t, "John", upcoming[1].Name)
		assert.Equal(t, 5, upcoming[1].DaysUntil)
		assert.Equal(t, date(2024, time.June, 15), upcoming[1].BirthdayDate)
	})

	t.Run("window too short", func(t *testing.T) {
		upcoming := book.UpcomingBirthdays(today, 3)

		require.Len(t, upcoming, 1)
		assert.Equal(t, "Mary", upcoming[0].Name)
	})

	t.Run("weekend birthday congratulated on monday", func(t *testing.T) {
		upcoming := book.UpcomingBirthdays(today, 7)

		// 15 June 2024 is a Saturday.
		assert.Equal(t, date(2024, time.June, 17), upcoming[1].CongratulationDate)
		assert.Equal(t, upcoming[0].BirthdayDate, upcoming[0].CongratulationDate)
	})
}

func TestCongratulationDate(t *testing.T) {
	assert.Equal(t, date(2024, time.June, 17), aggregate.CongratulationDate(date(2024, time.June, 15)))
	assert.Equal(t, date(2024, time.June, 17), aggregate.CongratulationDate(date(2024, time.June, 16)))
	assert.Equal(t, date(2024, time.June, 14), aggregate.CongratulationDate(date(2024, time.June, 14)))
}

func TestAddressBook_BirthdaysInPeriod(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "John"), "20.12.1990")))
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "Mary"), "05.01.1985")))
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "July"), "10.07.1980")))

	results := book.BirthdaysInPeriod(date(2024, time.December, 1), date(2025, time.January, 31))

	require.Len(t, results, 2)
	assert.Equal(t, "John", results[0].Name.String())
	assert.Equal(t, "Mary", results[1].Name.String())
}

func TestAddressBook_Stats(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "John", "1111111111")))
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "Mary", "1111111111"), "01.01.1990")))
	require.NoError(t, book.Add(newRecord(t, "Anna")))

	assert.Equal(t, aggregate.ContactStats{TotalContacts: 3, WithPhones: 2, WithBirthdays: 1}, book.Stats())
	assert.Equal(t, map[string]int{"1111111111": 2}, book.PhoneStats())
}

func TestAddressBook_Page(t *testing.T) {
	book := aggregate.NewAddressBook()
	for _, name := range []string{"charlie", "Alice", "bob"} {
		require.NoError(t, book.Add(newRecord(t, name)))
	}

	page := book.Page(pagination.NewParams(1, 2))
	require.Len(t, page, 2)
	assert.Equal(t, "Alice", page[0].Name.String())
	assert.Equal(t, "bob", page[1].Name.String())

	page = book.Page(pagination.NewParams(2, 2))
	require.Len(t, page, 1)
	assert.Equal(t, "charlie", page[0].Name.String())

	assert.Empty(t, book.Page(pagination.NewParams(3, 2)))
	assert.Equal(t, 2, book.TotalPages(2))
	assert.Equal(t, 0, aggregate.NewAddressBook().TotalPages(10))
}

func TestAddressBook_JSONRoundTrip(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "John Doe", "1111111111", "2222222222")))
	require.NoError(t, book.Add(withBirthday(t, newRecord(t, "Mary"), "29.02.2000")))

	data, err := book.ToJSON()
	require.NoError(t, err)

	restored, err := aggregate.AddressBookFromJSON(data)
	require.NoError(t, err)

	assert.Equal(t, book.ToDocument(), restored.ToDocument())

	john, ok := restored.Find("john doe")
	require.True(t, ok)
	assert.Equal(t, []string{"1111111111", "2222222222"}, john.PhoneStrings())
	mary, ok := restored.Find("mary")
	require.True(t, ok)
	require.NotNil(t, mary.Birthday)
	assert.Equal(t, "29.02.2000", mary.Birthday.String())
}

func TestAddressBookFromJSON_RestoresInKeyOrder(t *testing.T) {
	book := aggregate.NewAddressBook()
	require.NoError(t, book.Add(newRecord(t, "Zoe", "1111111111")))
	require.NoError(t, book.Add(newRecord(t, "Adam", "1111111111")))

	first, ok := book.SearchByPhone("1111111111")
	require.True(t, ok)
	assert.Equal(t, "Zoe", first.Name.String())

	data, err := book.ToJSON()
	require.NoError(t, err)
	restored, err := aggregate.AddressBookFromJSON(data)
	require.NoError(t, err)

	first, ok = restored.SearchByPhone("1111111111")
	require.True(t, ok)
	assert.Equal(t, "Adam", first.Name.String())
}

func TestAddressBookFromJSON_Invalid(t *testing.T) {
	_, err := aggregate.AddressBookFromJSON([]byte("{not json"))
	require.Error(t, err)

	_, err = aggregate.AddressBookFromJSON([]byte(`{"x": {"name": "X1", "phones": []}}`))
	require.ErrorIs(t, err, domain.ErrValidation)
}
