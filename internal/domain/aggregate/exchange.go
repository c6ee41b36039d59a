package aggregate

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
)

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

var csvHeader = []string{"id", "title", "content", "tags", "created_at", "updated_at"}

// Export renders every note in insertion order.
func (m *NotesManager) Export(format ExportFormat) (string, error) {
	notes := m.All()
	switch format {
	case FormatJSON:
		data := make([]NoteData, len(notes))
		for i, n := range notes {
			data[i] = noteToData(n)
		}
		out, err := marshalJSON(data)
		if err != nil {
			return "", fmt.Errorf("encoding notes: %w", err)
		}
		return string(out), nil
	case FormatCSV:
		var sb strings.Builder
		w := csv.NewWriter(&sb)
		if err := w.Write(csvHeader); err != nil {
			return "", fmt.Errorf("writing csv header: %w", err)
		}
		for _, n := range notes {
			d := noteToData(n)
			updated := ""
			if d.UpdatedAt != nil {
				updated = *d.UpdatedAt
			}
			row := []string{d.ID, d.Title, d.Content, strings.Join(d.Tags, ","), d.CreatedAt, updated}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("writing csv row: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", fmt.Errorf("writing csv: %w", err)
		}
		return sb.String(), nil
	case FormatMarkdown:
		var sb strings.Builder
		for _, n := range notes {
			fmt.Fprintf(&sb, "## %s\n\n%s\n\n**Tags:** %s\n\n---\n", n.Title, n.Content, strings.Join(n.Tags, ", "))
		}
		return sb.String(), nil
	default:
		return "", fmt.Errorf("%w: unsupported export format %q", domain.ErrInvalidArguments, format)
	}
}

// Import adds notes produced by Export. Notes whose id already exists are
// skipped; nothing is added unless every note parses.
func (m *NotesManager) Import(data string, format ExportFormat) (int, error) {
	var rows []NoteData
	switch format {
	case FormatJSON:
		if err := json.Unmarshal([]byte(data), &rows); err != nil {
			return 0, fmt.Errorf("decoding notes: %w", err)
		}
	case FormatCSV:
		parsed, err := parseCSV(data)
		if err != nil {
			return 0, err
		}
		rows = parsed
	default:
		return 0, fmt.Errorf("%w: unsupported import format %q", domain.ErrInvalidArguments, format)
	}

	notes := make([]*entity.Note, 0, len(rows))
	for i, row := range rows {
		n, err := noteFromData(row)
		if err != nil {
			return 0, fmt.Errorf("importing note %d: %w", i+1, err)
		}
		notes = append(notes, n)
	}

	count := 0
	for _, n := range notes {
		if n.ID == "" {
			n.ID = m.generateID()
		}
		if _, exists := m.notes[n.ID]; exists {
			continue
		}
		m.insert(n)
		count++
	}
	return count, nil
}

func parseCSV(data string) ([]NoteData, error) {
	records, err := csv.NewReader(strings.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range []string{"id", "title", "created_at"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: csv column %q missing", domain.ErrInvalidArguments, name)
		}
	}
	field := func(rec []string, name string) string {
		if i, ok := col[name]; ok && i < len(rec) {
			return rec[i]
		}
		return ""
	}

	rows := make([]NoteData, 0, len(records)-1)
	for _, rec := range records[1:] {
		d := NoteData{
			ID:        field(rec, "id"),
			Title:     field(rec, "title"),
			Content:   field(rec, "content"),
			CreatedAt: field(rec, "created_at"),
			Tags:      []string{},
		}
		if tags := field(rec, "tags"); tags != "" {
			d.Tags = strings.Split(tags, ",")
		}
		if updated := field(rec, "updated_at"); updated != "" {
			d.UpdatedAt = &updated
		}
		rows = append(rows, d)
	}
	return rows, nil
}
