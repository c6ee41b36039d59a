package valueobject

import (
	"regexp"
	"strings"
	"time"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
)

// BirthdayLayout is the only accepted textual birthday format (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

const minBirthdayYear = 1900

var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

type Birthday struct {
	raw  string
	date time.Time
}

// ParseBirthday validates raw against the current date.
func ParseBirthday(raw string) (Birthday, error) {
	return NewBirthday(raw, time.Now())
}

// NewBirthday validates raw against the given reference day. The date must
// exist in the calendar, lie strictly before today and fall in
// [1900, today.Year()-1].
func NewBirthday(raw string, today time.Time) (Birthday, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Birthday{}, domain.NewValidationError("birthday", domain.EmptyValue, "birthday cannot be empty")
	}
	if !birthdayPattern.MatchString(raw) {
		return Birthday{}, domain.NewValidationError("birthday", domain.InvalidFormat, "invalid date format, use DD.MM.YYYY")
	}

	date, err := time.ParseInLocation(BirthdayLayout, raw, time.UTC)
	if err != nil {
		if raw[:5] == "29.02" {
			year, _ := time.Parse("2006", raw[6:])
			if !isLeap(year.Year()) {
				return Birthday{}, domain.NewValidationError("birthday", domain.InvalidFormat, "%d is not a leap year, so 29.02 does not exist", year.Year())
			}
		}
		return Birthday{}, domain.NewValidationError("birthday", domain.InvalidFormat, "invalid date format, use DD.MM.YYYY")
	}

	ref := DateOf(today)
	if !date.Before(ref) {
		return Birthday{}, domain.NewValidationError("birthday", domain.OutOfRange, "birthday must be in the past")
	}
	if date.Year() < minBirthdayYear || date.Year() > ref.Year()-1 {
		return Birthday{}, domain.NewValidationError("birthday", domain.OutOfRange, "year must be between %d and %d", minBirthdayYear, ref.Year()-1)
	}

	return Birthday{raw: raw, date: date}, nil
}

func (b Birthday) String() string { return b.raw }

// Date is the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) IsZero() bool { return b.date.IsZero() }

// NextOccurrence returns the first month/day occurrence on or after today.
// A 29 February birthday only occurs in leap years.
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	ref := DateOf(today)
	year := ref.Year()
	next, ok := b.OccurrenceIn(year)
	for !ok || next.Before(ref) {
		year++
		next, ok = b.OccurrenceIn(year)
	}
	return next
}

// OccurrenceIn returns the birthday in the given year, if that year has it.
func (b Birthday) OccurrenceIn(year int) (time.Time, bool) {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

func (b Birthday) DaysToNextBirthday(today time.Time) int {
	return DaysBetween(DateOf(today), b.NextOccurrence(today))
}

// DateOf truncates t to its calendar day, expressed at midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts whole days from a to b; both must be DateOf values.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
