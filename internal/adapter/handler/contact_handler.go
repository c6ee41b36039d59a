package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/domain"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
	"github.com/marcos-nsantos/personal-assistant/internal/usecase/operations"
)

type ContactHandler struct {
	contactSvc ContactService
}

func NewContactHandler(contactSvc ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

func (h *ContactHandler) AddContact(ctx context.Context, args map[string]any) response.Result {
	var req request.AddContactRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	r, err := h.contactSvc.AddContact(ctx, operations.AddContactInput{
		Name:     req.Name,
		Phones:   req.Phones,
		Birthday: req.Birthday,
	})
	var data any
	if r != nil {
		data = response.ContactFromRecord(r)
	}
	return finish(err, contactFailure(req.Name), fmt.Sprintf("Contact '%s' added successfully", req.Name), data)
}

func (h *ContactHandler) SearchContacts(_ context.Context, args map[string]any) response.Result {
	var req request.SearchContactsRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	records := h.contactSvc.SearchContacts(req.Query)
	if len(records) == 0 {
		return response.OK(fmt.Sprintf("No contacts found matching '%s'", req.Query), response.ContactsFromRecords(records))
	}
	return response.OK(
		fmt.Sprintf("Found %s matching '%s'", plural(len(records), "contact"), req.Query),
		response.ContactsFromRecords(records),
	)
}

func (h *ContactHandler) ShowContacts(_ context.Context, args map[string]any) response.Result {
	var req request.ShowContactsRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	records, info := h.contactSvc.ShowContacts(req.Page, req.PageSize)
	if info.TotalItems == 0 {
		return response.OK("No contacts found. Add some contacts first!", response.ContactsPage(records, info))
	}
	return response.OK(
		fmt.Sprintf("Page %d of %d, %s in total", info.Page, info.TotalPages, plural(info.TotalItems, "contact")),
		response.ContactsPage(records, info),
	)
}

func (h *ContactHandler) EditContact(ctx context.Context, args map[string]any) response.Result {
	var req request.EditContactRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	action := operations.ContactAction(req.Action)
	var message string
	switch action {
	case operations.ActionAddPhone:
		if req.Phone == "" {
			return missing("phone")
		}
		message = fmt.Sprintf("Phone '%s' added successfully", req.Phone)
	case operations.ActionRemovePhone:
		if req.Phone == "" {
			return missing("phone")
		}
		message = fmt.Sprintf("Phone '%s' removed successfully", req.Phone)
	case operations.ActionChangePhone:
		if req.Phone == "" {
			return missing("phone")
		}
		if req.NewPhone == "" {
			return missing("new_phone")
		}
		message = fmt.Sprintf("Phone changed from '%s' to '%s'", req.Phone, req.NewPhone)
	case operations.ActionAddBirthday:
		if req.Birthday == "" {
			return missing("birthday")
		}
		message = fmt.Sprintf("Birthday set to '%s'", req.Birthday)
	}

	r, err := h.contactSvc.EditContact(ctx, operations.EditContactInput{
		Name:     req.Name,
		Action:   action,
		Phone:    req.Phone,
		NewPhone: req.NewPhone,
		Birthday: req.Birthday,
	})
	var data any
	if r != nil {
		data = response.ContactFromRecord(r)
	}
	return finish(err, contactFailure(req.Name), message, data)
}

func (h *ContactHandler) DeleteContact(ctx context.Context, args map[string]any) response.Result {
	var req request.ContactNameRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	err := h.contactSvc.DeleteContact(ctx, req.Name)
	return finish(err, contactFailure(req.Name), fmt.Sprintf("Contact '%s' deleted successfully", req.Name), nil)
}

func (h *ContactHandler) ViewContactDetails(_ context.Context, args map[string]any) response.Result {
	var req request.ContactNameRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	r, err := h.contactSvc.ContactDetails(req.Name)
	if err != nil {
		return contactFailure(req.Name)(err)
	}
	return response.OK(fmt.Sprintf("Details for contact '%s'", r.Name), response.ContactFromRecord(r))
}

func (h *ContactHandler) UpcomingBirthdays(_ context.Context, args map[string]any) response.Result {
	var req request.UpcomingBirthdaysRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	days := operations.DefaultUpcomingDays
	if req.Days != nil {
		days = *req.Days
	}
	upcoming, err := h.contactSvc.UpcomingBirthdays(days)
	if err != nil {
		return response.FromError(err)
	}
	if len(upcoming) == 0 {
		return response.OK(fmt.Sprintf("No upcoming birthdays in the next %d days", days), response.UpcomingBirthdaysFromAggregate(upcoming))
	}
	return response.OK(
		fmt.Sprintf("Found %s in the next %d days", plural(len(upcoming), "upcoming birthday"), days),
		response.UpcomingBirthdaysFromAggregate(upcoming),
	)
}

// contactFailure names the contact in not-found and duplicate messages.
func contactFailure(name string) func(error) response.Result {
	return func(err error) response.Result {
		switch {
		case errors.Is(err, domain.ErrContactNotFound):
			return response.FromError(apperror.New(apperror.CodeNotFound, fmt.Sprintf("Contact '%s' not found", name)))
		case errors.Is(err, domain.ErrContactAlreadyExists):
			return response.FromError(apperror.Conflict(fmt.Sprintf("Contact '%s' already exists", name)))
		default:
			return response.FromError(err)
		}
	}
}
