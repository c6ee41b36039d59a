package entity

import (
	"fmt"
	"slices"
	"time"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
)

// Record is one contact: a name that never changes, a set of unique phones
// in insertion order and an optional birthday.
type Record struct {
	Name     valueobject.Name
	Phones   []valueobject.Phone
	Birthday *valueobject.Birthday
}

func NewRecord(name string) (*Record, error) {
	n, err := valueobject.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n}, nil
}

func (r *Record) Key() string {
	return r.Name.Key()
}

func (r *Record) AddPhone(raw string) error {
	phone, err := valueobject.NewPhone(raw)
	if err != nil {
		return err
	}
	if r.indexOf(phone) >= 0 {
		return fmt.Errorf("adding phone %s: %w", phone, domain.ErrPhoneAlreadyExists)
	}
	r.Phones = append(r.Phones, phone)
	return nil
}

func (r *Record) RemovePhone(raw string) error {
	phone, err := valueobject.NewPhone(raw)
	if err != nil {
		return err
	}
	i := r.indexOf(phone)
	if i < 0 {
		return fmt.Errorf("removing phone %s: %w", phone, domain.ErrPhoneNotFound)
	}
	r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
	return nil
}

// EditPhone replaces oldRaw with newRaw in place, keeping its position.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	oldPhone, err := valueobject.NewPhone(oldRaw)
	if err != nil {
		return err
	}
	newPhone, err := valueobject.NewPhone(newRaw)
	if err != nil {
		return err
	}

	i := r.indexOf(oldPhone)
	if i < 0 {
		return fmt.Errorf("editing phone %s: %w", oldPhone, domain.ErrPhoneNotFound)
	}
	if j := r.indexOf(newPhone); j >= 0 && j != i {
		return fmt.Errorf("editing phone %s: %w", newPhone, domain.ErrPhoneAlreadyExists)
	}
	r.Phones[i] = newPhone
	return nil
}

func (r *Record) FindPhone(raw string) (valueobject.Phone, bool) {
	phone, err := valueobject.NewPhone(raw)
	if err != nil {
		return valueobject.Phone{}, false
	}
	if i := r.indexOf(phone); i >= 0 {
		return r.Phones[i], true
	}
	return valueobject.Phone{}, false
}

// HasPhoneDigits reports whether any phone equals the given digit string.
func (r *Record) HasPhoneDigits(digits string) bool {
	for _, p := range r.Phones {
		if p.String() == digits {
			return true
		}
	}
	return false
}

// AddBirthday validates raw against today's date and replaces any
// existing birthday.
func (r *Record) AddBirthday(raw string) error {
	b, err := valueobject.ParseBirthday(raw)
	if err != nil {
		return err
	}
	r.SetBirthday(b)
	return nil
}

func (r *Record) SetBirthday(b valueobject.Birthday) {
	r.Birthday = &b
}

func (r *Record) RemoveBirthday() {
	r.Birthday = nil
}

func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	if r.Birthday == nil {
		return 0, false
	}
	return r.Birthday.DaysToNextBirthday(today), true
}

func (r *Record) PhoneStrings() []string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = p.String()
	}
	return phones
}

func (r *Record) Clone() *Record {
	c := &Record{Name: r.Name, Phones: slices.Clone(r.Phones)}
	if r.Birthday != nil {
		b := *r.Birthday
		c.Birthday = &b
	}
	return c
}

func (r *Record) String() string {
	s := fmt.Sprintf("Contact name: %s, phones: %v", r.Name, r.PhoneStrings())
	if r.Birthday != nil {
		s += fmt.Sprintf(", birthday: %s", r.Birthday)
	}
	return s
}

func (r *Record) indexOf(phone valueobject.Phone) int {
	for i, p := range r.Phones {
		if p.Equal(phone) {
			return i
		}
	}
	return -1
}
