package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestNewBirthday(t *testing.T) {
	today := day(2025, time.March, 10)

	tests := []struct {
		name     string
		raw      string
		wantKind domain.ValidationKind
		wantMsg  string
	}{
		{name: "valid date", raw: "15.06.1990"},
		{name: "leap day in leap year", raw: "29.02.2000"},
		{name: "lower year bound", raw: "01.01.1900"},
		{name: "empty", raw: "", wantKind: domain.EmptyValue},
		{name: "wrong separator", raw: "15/06/1990", wantKind: domain.InvalidFormat},
		{name: "short year", raw: "15.06.90", wantKind: domain.InvalidFormat},
		{name: "impossible day", raw: "31.04.1990", wantKind: domain.InvalidFormat},
		{name: "month out of range", raw: "10.13.1990", wantKind: domain.InvalidFormat},
		{
			name:     "leap day in non-leap year",
			raw:      "29.02.2001",
			wantKind: domain.InvalidFormat,
			wantMsg:  "2001 is not a leap year, so 29.02 does not exist",
		},
		{name: "century non-leap year", raw: "29.02.1900", wantKind: domain.InvalidFormat},
		{name: "future date", raw: "01.01.2030", wantKind: domain.OutOfRange},
		{name: "today", raw: "10.03.2025", wantKind: domain.OutOfRange},
		{name: "current year in the past", raw: "01.01.2025", wantKind: domain.OutOfRange},
		{name: "before 1900", raw: "31.12.1899", wantKind: domain.OutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := valueobject.NewBirthday(tt.raw, today)
			if tt.wantKind != "" {
				require.ErrorIs(t, err, domain.ErrValidation)
				kind, _ := domain.ValidationKindOf(err)
				assert.Equal(t, tt.wantKind, kind)
				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, b.String())
		})
	}
}

func TestBirthday_DaysToNextBirthday(t *testing.T) {
	t.Run("later this year", func(t *testing.T) {
		b, err := valueobject.NewBirthday("15.06.1990", day(2024, time.June, 10))
		require.NoError(t, err)

		assert.Equal(t, 5, b.DaysToNextBirthday(day(2024, time.June, 10)))
	})

	t.Run("today is the birthday", func(t *testing.T) {
		b, err := valueobject.NewBirthday("10.06.1990", day(2024, time.June, 10))
		require.NoError(t, err)

		assert.Equal(t, 0, b.DaysToNextBirthday(day(2024, time.June, 10)))
	})

	t.Run("already passed rolls to next year", func(t *testing.T) {
		b, err := valueobject.NewBirthday("01.01.1990", day(2023, time.January, 2))
		require.NoError(t, err)

		assert.Equal(t, 364, b.DaysToNextBirthday(day(2023, time.January, 2)))
	})

	t.Run("leap day rolls to next leap year", func(t *testing.T) {
		today := day(2025, time.March, 1)
		b, err := valueobject.NewBirthday("29.02.2000", today)
		require.NoError(t, err)

		next := b.NextOccurrence(today)
		assert.Equal(t, day(2028, time.February, 29), next)
		assert.Equal(t, valueobject.DaysBetween(today, next), b.DaysToNextBirthday(today))
	})

	t.Run("ignores time of day", func(t *testing.T) {
		b, err := valueobject.NewBirthday("15.06.1990", day(2024, time.June, 10))
		require.NoError(t, err)

		late := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 5, b.DaysToNextBirthday(late))
	})
}
