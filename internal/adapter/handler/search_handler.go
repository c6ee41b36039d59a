package handler

import (
	"context"
	"fmt"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/request"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
)

type SearchHandler struct {
	searchSvc SearchService
}

func NewSearchHandler(searchSvc SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

func (h *SearchHandler) GlobalSearch(_ context.Context, args map[string]any) response.Result {
	var req request.GlobalSearchRequest
	if err := request.Decode(args, &req); err != nil {
		return response.FromError(err)
	}

	result := h.searchSvc.GlobalSearch(req.Query)
	return response.OK(
		fmt.Sprintf("Found %s and %s matching '%s'",
			plural(len(result.Contacts), "contact"), plural(len(result.Notes), "note"), req.Query),
		response.GlobalSearchFromResult(result),
	)
}

func (h *SearchHandler) GetStatistics(_ context.Context, _ map[string]any) response.Result {
	stats := h.searchSvc.Statistics()
	return response.OK(
		fmt.Sprintf("%s and %s stored",
			plural(stats.Contacts.TotalContacts, "contact"), plural(stats.Notes.TotalNotes, "note")),
		response.StatisticsFromResult(stats),
	)
}
