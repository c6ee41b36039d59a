package aggregate

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/pagination"
)

// AddressBook indexes records by normalized name and remembers insertion
// order, which breaks every ranking tie.
type AddressBook struct {
	records map[string]*entity.Record
	order   []string
}

type UpcomingBirthday struct {
	Name               string
	Birthday           string
	BirthdayDate       time.Time
	CongratulationDate time.Time
	DaysUntil          int
}

type ContactStats struct {
	TotalContacts int
	WithPhones    int
	WithBirthdays int
}

func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*entity.Record)}
}

func (b *AddressBook) Add(r *entity.Record) error {
	key := r.Key()
	if _, exists := b.records[key]; exists {
		return fmt.Errorf("adding contact %q: %w", r.Name, domain.ErrContactAlreadyExists)
	}
	b.records[key] = r
	b.order = append(b.order, key)
	return nil
}

func (b *AddressBook) Find(name string) (*entity.Record, bool) {
	r, ok := b.records[valueobject.NormalizeNameKey(name)]
	return r, ok
}

func (b *AddressBook) Delete(name string) bool {
	key := valueobject.NormalizeNameKey(name)
	if _, ok := b.records[key]; !ok {
		return false
	}
	delete(b.records, key)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == key })
	return true
}

func (b *AddressBook) Len() int {
	return len(b.records)
}

// All returns every record sorted by case-folded display name.
func (b *AddressBook) All() []*entity.Record {
	all := b.inOrder()
	slices.SortStableFunc(all, func(x, y *entity.Record) int {
		return strings.Compare(strings.ToLower(x.Name.String()), strings.ToLower(y.Name.String()))
	})
	return all
}

func (b *AddressBook) Page(p pagination.Params) []*entity.Record {
	return pagination.Slice(b.All(), p)
}

func (b *AddressBook) TotalPages(perPage int) int {
	return pagination.TotalPages(b.Len(), perPage)
}

// SearchByName returns records whose key contains the normalized query,
// best overlap first.
func (b *AddressBook) SearchByName(query string) []*entity.Record {
	q := valueobject.NormalizeNameKey(query)
	var results []*entity.Record
	for _, key := range b.order {
		if strings.Contains(key, q) {
			results = append(results, b.records[key])
		}
	}
	rankByName(results, q)
	return results
}

// SearchByPhone reduces query to digits and returns the first record
// holding exactly that phone.
func (b *AddressBook) SearchByPhone(query string) (*entity.Record, bool) {
	digits := valueobject.NormalizePhone(query)
	if digits == "" {
		return nil, false
	}
	for _, key := range b.order {
		if r := b.records[key]; r.HasPhoneDigits(digits) {
			return r, true
		}
	}
	return nil, false
}

func (b *AddressBook) SearchContacts(query string) []*entity.Record {
	results := b.SearchByName(query)
	if r, ok := b.SearchByPhone(query); ok && !slices.Contains(results, r) {
		results = append(results, r)
	}
	rankByName(results, valueobject.NormalizeNameKey(query))
	return results
}

// UpcomingBirthdays lists records whose next birthday is 0..days away.
// A birthday on a weekend is congratulated on the following Monday.
func (b *AddressBook) UpcomingBirthdays(today time.Time, days int) []UpcomingBirthday {
	ref := valueobject.DateOf(today)
	var upcoming []UpcomingBirthday
	for _, r := range b.inOrder() {
		if r.Birthday == nil {
			continue
		}
		next := r.Birthday.NextOccurrence(ref)
		daysUntil := valueobject.DaysBetween(ref, next)
		if daysUntil < 0 || daysUntil > days {
			continue
		}
		upcoming = append(upcoming, UpcomingBirthday{
			Name:               r.Name.String(),
			Birthday:           r.Birthday.String(),
			BirthdayDate:       next,
			CongratulationDate: CongratulationDate(next),
			DaysUntil:          daysUntil,
		})
	}
	slices.SortStableFunc(upcoming, func(x, y UpcomingBirthday) int {
		return cmp.Compare(x.DaysUntil, y.DaysUntil)
	})
	return upcoming
}

// CongratulationDate moves Saturday and Sunday to the next Monday.
func CongratulationDate(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

// BirthdaysInPeriod returns records whose birthday occurs within
// [start, end], ordered by that occurrence.
func (b *AddressBook) BirthdaysInPeriod(start, end time.Time) []*entity.Record {
	from, to := valueobject.DateOf(start), valueobject.DateOf(end)
	type hit struct {
		record *entity.Record
		when   time.Time
	}
	var hits []hit
	for _, r := range b.inOrder() {
		if r.Birthday == nil {
			continue
		}
		for year := from.Year(); year <= to.Year(); year++ {
			when, ok := r.Birthday.OccurrenceIn(year)
			if ok && !when.Before(from) && !when.After(to) {
				hits = append(hits, hit{record: r, when: when})
				break
			}
		}
	}
	slices.SortStableFunc(hits, func(x, y hit) int { return x.when.Compare(y.when) })

	records := make([]*entity.Record, len(hits))
	for i, h := range hits {
		records[i] = h.record
	}
	return records
}

func (b *AddressBook) Stats() ContactStats {
	stats := ContactStats{TotalContacts: len(b.records)}
	for _, r := range b.records {
		if len(r.Phones) > 0 {
			stats.WithPhones++
		}
		if r.Birthday != nil {
			stats.WithBirthdays++
		}
	}
	return stats
}

// PhoneStats counts how many records carry each phone.
func (b *AddressBook) PhoneStats() map[string]int {
	stats := make(map[string]int)
	for _, r := range b.records {
		for _, p := range r.Phones {
			stats[p.String()]++
		}
	}
	return stats
}

// Similarity is the share of positions where a and b hold the same byte,
// relative to the longer string.
func Similarity(a, b string) float64 {
	n := min(len(a), len(b))
	matches := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(max(len(a), len(b), 1))
}

func rankByName(records []*entity.Record, query string) {
	slices.SortStableFunc(records, func(x, y *entity.Record) int {
		return cmp.Compare(Similarity(query, y.Key()), Similarity(query, x.Key()))
	})
}

func (b *AddressBook) inOrder() []*entity.Record {
	records := make([]*entity.Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, b.records[key])
	}
	return records
}
