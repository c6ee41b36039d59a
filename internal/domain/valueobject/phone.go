package valueobject

import (
	"strings"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
)

const phoneDigits = 10

// Phone holds a phone number normalized to exactly ten digits.
type Phone struct {
	value string
}

func NewPhone(raw string) (Phone, error) {
	if strings.TrimSpace(raw) == "" {
		return Phone{}, domain.NewValidationError("phone", domain.EmptyValue, "phone number cannot be empty")
	}
	digits := NormalizePhone(raw)
	if len(digits) != phoneDigits {
		return Phone{}, domain.NewValidationError("phone", domain.InvalidLength, "phone number must contain exactly %d digits", phoneDigits)
	}
	return Phone{value: digits}, nil
}

// NormalizePhone strips every character that is not an ASCII digit.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p Phone) String() string { return p.value }

func (p Phone) Equal(other Phone) bool { return p.value == other.value }
