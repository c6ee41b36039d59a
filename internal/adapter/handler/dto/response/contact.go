package response

import (
	"github.com/marcos-nsantos/personal-assistant/internal/domain/aggregate"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/entity"
	"github.com/marcos-nsantos/personal-assistant/internal/domain/valueobject"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/pagination"
)

type ContactResponse struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday"`
}

type ContactsPageResponse struct {
	Contacts   []ContactResponse  `json:"contacts"`
	Pagination PaginationResponse `json:"pagination"`
}

type UpcomingBirthdayResponse struct {
	Name               string `json:"name"`
	Birthday           string `json:"birthday"`
	BirthdayDate       string `json:"birthday_date"`
	CongratulationDate string `json:"congratulation_date"`
	DaysUntil          int    `json:"days_until"`
}

func ContactFromRecord(r *entity.Record) ContactResponse {
	resp := ContactResponse{
		Name:   r.Name.String(),
		Phones: r.PhoneStrings(),
	}
	if r.Birthday != nil {
		b := r.Birthday.String()
		resp.Birthday = &b
	}
	return resp
}

func ContactsFromRecords(records []*entity.Record) []ContactResponse {
	result := make([]ContactResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ContactFromRecord(r))
	}
	return result
}

func ContactsPage(records []*entity.Record, info *pagination.Info) ContactsPageResponse {
	return ContactsPageResponse{
		Contacts:   ContactsFromRecords(records),
		Pagination: PaginationFromInfo(info),
	}
}

func UpcomingBirthdaysFromAggregate(upcoming []aggregate.UpcomingBirthday) []UpcomingBirthdayResponse {
	result := make([]UpcomingBirthdayResponse, 0, len(upcoming))
	for _, u := range upcoming {
		result = append(result, UpcomingBirthdayResponse{
			Name:               u.Name,
			Birthday:           u.Birthday,
			BirthdayDate:       u.BirthdayDate.Format(valueobject.BirthdayLayout),
			CongratulationDate: u.CongratulationDate.Format(valueobject.BirthdayLayout),
			DaysUntil:          u.DaysUntil,
		})
	}
	return result
}

func PaginationFromInfo(info *pagination.Info) PaginationResponse {
	return PaginationResponse{
		Page:       info.Page,
		PerPage:    info.PerPage,
		TotalItems: info.TotalItems,
		TotalPages: info.TotalPages,
		HasNext:    info.HasNext,
		HasPrev:    info.HasPrev,
	}
}
