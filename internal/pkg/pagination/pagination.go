package pagination

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

type Params struct {
	Page    int
	PerPage int
}

func NewParams(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Params{
		Page:    page,
		PerPage: perPage,
	}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Slice returns the page of items selected by p. Pages past the end are empty.
func Slice[T any](items []T, p Params) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := min(start+p.Limit(), len(items))
	return items[start:end]
}

// TotalPages is the ceiling of totalItems/perPage; zero items means zero pages.
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

type Info struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalItems int  `json:"total_items"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

func NewInfo(page, perPage, totalItems int) *Info {
	totalPages := TotalPages(totalItems, perPage)
	return &Info{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
