package server

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler"
	"github.com/marcos-nsantos/personal-assistant/internal/adapter/handler/dto/response"
	"github.com/marcos-nsantos/personal-assistant/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/personal-assistant/internal/pkg/apperror"
)

// Router maps function names to their handlers.
type Router struct {
	routes         map[string]handler.Func
	middlewares    []middleware.Middleware
	contactHandler *handler.ContactHandler
	noteHandler    *handler.NoteHandler
	searchHandler  *handler.SearchHandler
	logger         *zap.Logger
}

type RouterConfig struct {
	ContactHandler *handler.ContactHandler
	NoteHandler    *handler.NoteHandler
	SearchHandler  *handler.SearchHandler
	Logger         *zap.Logger
}

func NewRouter(cfg RouterConfig) *Router {
	r := &Router{
		routes:         make(map[string]handler.Func),
		contactHandler: cfg.ContactHandler,
		noteHandler:    cfg.NoteHandler,
		searchHandler:  cfg.SearchHandler,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.middlewares = []middleware.Middleware{
		middleware.CommandID(),
		middleware.Recovery(r.logger),
		middleware.Logger(r.logger),
	}
}

func (r *Router) setupRoutes() {
	contacts := r.contactHandler
	r.handle("add_contact", contacts.AddContact)
	r.handle("search_contacts", contacts.SearchContacts)
	r.handle("show_contacts", contacts.ShowContacts)
	r.handle("edit_contact", contacts.EditContact)
	r.handle("delete_contact", contacts.DeleteContact)
	r.handle("view_contact_details", contacts.ViewContactDetails)
	r.handle("get_upcoming_birthdays", contacts.UpcomingBirthdays)

	notes := r.noteHandler
	r.handle("add_note", notes.AddNote)
	r.handle("search_notes", notes.SearchNotes)
	r.handle("show_notes", notes.ShowNotes)
	r.handle("edit_note", notes.EditNote)
	r.handle("delete_note", notes.DeleteNote)
	r.handle("view_note_details", notes.ViewNoteDetails)
	r.handle("search_notes_by_tag", notes.SearchNotesByTag)
	r.handle("list_tags", notes.ListTags)
	r.handle("export_notes", notes.ExportNotes)

	r.handle("global_search", r.searchHandler.GlobalSearch)
	r.handle("get_statistics", r.searchHandler.GetStatistics)
}

func (r *Router) handle(name string, h handler.Func) {
	r.routes[name] = middleware.Chain(name, h, r.middlewares...)
}

// Execute runs the named function. It never panics and always returns a
// result, even for unknown names or missing arguments.
func (r *Router) Execute(ctx context.Context, name string, args map[string]any) response.Result {
	h, ok := r.routes[name]
	if !ok {
		r.logger.Warn("unknown function", zap.String("function", name))
		return response.FromError(apperror.UnknownOperation(name))
	}
	if args == nil {
		args = map[string]any{}
	}
	return h(ctx, args)
}

// Functions lists the registered function names in sorted order.
func (r *Router) Functions() []string {
	names := make([]string, 0, len(r.routes))
	for name := range r.routes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
