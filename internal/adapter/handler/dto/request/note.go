package request

type AddNoteRequest struct {
	Title   string     `json:"title" validate:"required"`
	Content string     `json:"content"`
	Tags    StringList `json:"tags"`
}

type SearchNotesRequest struct {
	Query string `json:"query" validate:"required"`
	Mode  string `json:"mode" validate:"omitempty,oneof=title_content title_content_tags ranked"`
}

type ShowNotesRequest struct {
	SortBy  string `json:"sort_by" validate:"omitempty,oneof=created updated title tag_count"`
	Reverse bool   `json:"reverse"`
	Limit   int    `json:"limit" validate:"omitempty,min=1"`
}

// EditNoteRequest uses a pointer for content because clearing it is a
// valid edit.
type EditNoteRequest struct {
	NoteID  string  `json:"note_id" validate:"required"`
	Action  string  `json:"action" validate:"required,oneof=edit_title edit_content add_tag remove_tag"`
	Title   string  `json:"title"`
	Content *string `json:"content"`
	Tag     string  `json:"tag"`
}

type NoteIDRequest struct {
	NoteID string `json:"note_id" validate:"required"`
}

type NotesByTagRequest struct {
	Tag string `json:"tag" validate:"required"`
}

type ExportNotesRequest struct {
	Format string `json:"format" validate:"omitempty,oneof=json csv markdown"`
}

type GlobalSearchRequest struct {
	Query string `json:"query" validate:"required"`
}
