package request

type AddContactRequest struct {
	Name     string     `json:"name" validate:"required"`
	Phones   StringList `json:"phones"`
	Birthday string     `json:"birthday"`
}

type SearchContactsRequest struct {
	Query string `json:"query" validate:"required"`
}

type ShowContactsRequest struct {
	Page     int `json:"page" validate:"omitempty,min=1"`
	PageSize int `json:"page_size" validate:"omitempty,min=1,max=100"`
}

// EditContactRequest carries the arguments of every action; the handler
// checks the ones the chosen action needs.
type EditContactRequest struct {
	Name     string `json:"name" validate:"required"`
	Action   string `json:"action" validate:"required,oneof=add_phone remove_phone change_phone add_birthday"`
	Phone    string `json:"phone"`
	NewPhone string `json:"new_phone"`
	Birthday string `json:"birthday"`
}

type ContactNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpcomingBirthdaysRequest struct {
	Days *int `json:"days" validate:"omitempty,min=0,max=365"`
}
