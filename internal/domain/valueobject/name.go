package valueobject

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
)

const maxNameLength = 100

var namePattern = regexp.MustCompile(`^[A-Za-z\s\-']{1,100}$`)

// Name is a contact's display name. Always valid once constructed.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Name{}, domain.NewValidationError("name", domain.EmptyValue, "name cannot be empty or whitespace only")
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return Name{}, domain.NewValidationError("name", domain.InvalidLength, "name must be between 1 and %d characters", maxNameLength)
	}
	if !namePattern.MatchString(value) {
		return Name{}, domain.NewValidationError("name", domain.InvalidCharacters, "name can contain only letters, spaces, hyphens, and apostrophes")
	}
	return Name{value: value}, nil
}

func (n Name) String() string { return n.value }

// Key is the lookup form of the name: trimmed and case-folded.
func (n Name) Key() string { return NormalizeNameKey(n.value) }

func NormalizeNameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
