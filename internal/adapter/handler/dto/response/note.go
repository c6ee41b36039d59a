package response

import (
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
)

type NoteResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt *string  `json:"updated_at"`
}

type TagResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type ExportResponse struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

func NoteFromEntity(n *entity.Note) NoteResponse {
	resp := NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      append([]string{}, n.Tags...),
		CreatedAt: n.CreatedAt.Format(aggregate.TimestampLayout),
	}
	if n.UpdatedAt != nil {
		u := n.UpdatedAt.Format(aggregate.TimestampLayout)
		resp.UpdatedAt = &u
	}
	return resp
}

func NotesFromEntities(notes []*entity.Note) []NoteResponse {
	result := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		result = append(result, NoteFromEntity(n))
	}
	return result
}

// NotesByID keys each note by its id.
func NotesByID(notes []*entity.Note) map[string]NoteResponse {
	result := make(map[string]NoteResponse, len(notes))
	for _, n := range notes {
		result[n.ID] = NoteFromEntity(n)
	}
	return result
}

func TagsFromCounts(counts []aggregate.TagCount) []TagResponse {
	result := make([]TagResponse, 0, len(counts))
	for _, c := range counts {
		result = append(result, TagResponse{Tag: c.Tag, Count: c.Count})
	}
	return result
}
