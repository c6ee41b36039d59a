package entity

import (
	"html"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
)

const (
	MaxTitleLength   = 200
	MaxContentLength = 10000
)

// SearchMode selects which note fields a substring query is matched against.
type SearchMode string

const (
	SearchTitleContent     SearchMode = "title_content"
	SearchTitleContentTags SearchMode = "title_content_tags"
	SearchRanked           SearchMode = "ranked"
)

func (m SearchMode) IsValid() bool {
	switch m {
	case SearchTitleContent, SearchTitleContentTags, SearchRanked:
		return true
	}
	return false
}

type Note struct {
	ID        string
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewNote(id, title, content string, tags []string) (*Note, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	c, err := sanitizeContent(content)
	if err != nil {
		return nil, err
	}
	return &Note{
		ID:        id,
		Title:     t,
		Content:   c,
		Tags:      valueobject.NormalizeTags(tags),
		CreatedAt: Timestamp(),
	}, nil
}

// RestoreNote rebuilds a persisted note. Content is taken as stored since it
// was escaped when first written.
func RestoreNote(id, title, content string, tags []string, createdAt time.Time, updatedAt *time.Time) (*Note, error) {
	t, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	return &Note{
		ID:        id,
		Title:     t,
		Content:   content,
		Tags:      valueobject.NormalizeTags(tags),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

// Timestamp is the current UTC time at the precision notes are persisted with.
func Timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (n *Note) UpdateTitle(title string) error {
	t, err := validateTitle(title)
	if err != nil {
		return err
	}
	n.Title = t
	n.touch()
	return nil
}

func (n *Note) UpdateContent(content string) error {
	c, err := sanitizeContent(content)
	if err != nil {
		return err
	}
	n.Content = c
	n.touch()
	return nil
}

// AddTag reports whether the tag was added. Invalid and already present tags
// leave the note unchanged.
func (n *Note) AddTag(tag string) bool {
	norm, ok := valueobject.NormalizeTag(tag)
	if !ok || n.HasTag(norm) {
		return false
	}
	n.Tags = valueobject.NormalizeTags(append(n.Tags, norm))
	n.touch()
	return true
}

func (n *Note) RemoveTag(tag string) bool {
	norm, _ := valueobject.NormalizeTag(tag)
	i := slices.Index(n.Tags, norm)
	if i < 0 {
		return false
	}
	n.Tags = slices.Delete(n.Tags, i, i+1)
	n.touch()
	return true
}

func (n *Note) HasTag(tag string) bool {
	norm, _ := valueobject.NormalizeTag(tag)
	_, found := slices.BinarySearch(n.Tags, norm)
	return found
}

// SetTags replaces the whole tag list, dropping invalid entries.
func (n *Note) SetTags(tags []string) {
	n.Tags = valueobject.NormalizeTags(tags)
	n.touch()
}

// Matches reports a case-insensitive substring match. Ranked mode matches
// whenever SearchScore is positive.
func (n *Note) Matches(query string, mode SearchMode) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
		return true
	}
	switch mode {
	case SearchTitleContentTags:
		for _, tag := range n.Tags {
			if strings.Contains(tag, q) {
				return true
			}
		}
	case SearchRanked:
		return n.SearchScore(query) > 0
	}
	return false
}

// SearchScore weighs a title hit 2.0, a content hit 1.0 and an exact tag
// hit 1.5.
func (n *Note) SearchScore(query string) float64 {
	q := strings.ToLower(query)
	var score float64
	if strings.Contains(strings.ToLower(n.Title), q) {
		score += 2.0
	}
	if strings.Contains(strings.ToLower(n.Content), q) {
		score += 1.0
	}
	if slices.Contains(n.Tags, q) {
		score += 1.5
	}
	return score
}

// LastModified is UpdatedAt when set, otherwise CreatedAt.
func (n *Note) LastModified() time.Time {
	if n.UpdatedAt != nil {
		return *n.UpdatedAt
	}
	return n.CreatedAt
}

func (n *Note) Clone() *Note {
	c := *n
	c.Tags = slices.Clone(n.Tags)
	if n.UpdatedAt != nil {
		u := *n.UpdatedAt
		c.UpdatedAt = &u
	}
	return &c
}

func (n *Note) touch() {
	now := Timestamp()
	n.UpdatedAt = &now
}

func validateTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", domain.NewValidationError("title", domain.EmptyValue, "title cannot be empty")
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return "", domain.NewValidationError("title", domain.InvalidLength, "title must be 1-%d characters", MaxTitleLength)
	}
	return t, nil
}

func sanitizeContent(content string) (string, error) {
	if utf8.RuneCountInString(content) > MaxContentLength {
		return "", domain.NewValidationError("content", domain.InvalidLength, "content must be at most %d characters", MaxContentLength)
	}
	return html.EscapeString(content), nil
}
