package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"knowgent/internal/handlers"
	"knowgent/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Notebooks   service.NotebookService
	Notes       service.NoteService
	Tags        service.TagService
	NoteTags    service.NoteTagService
	Consistency service.ConsistencyChecker
	DB          handlers.Pinger
	BasePath    string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	notebookHandler := handlers.NewNotebookHandler(deps.Notebooks)
	noteHandler := handlers.NewNoteHandler(deps.Notes, deps.NoteTags)
	tagHandler := handlers.NewTagHandler(deps.Tags, deps.NoteTags)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.DB, deps.BasePath))
		r.Method(http.MethodGet, "/tree", handlers.NewTreeHandler(deps.Notebooks))
		r.Method(http.MethodGet, "/consistency", handlers.NewConsistencyHandler(deps.Consistency))

		r.Route("/notebooks", func(r chi.Router) {
			r.Get("/", notebookHandler.List)
			r.Post("/", notebookHandler.Create)

			r.Route("/{notebook}", func(r chi.Router) {
				r.Get("/", notebookHandler.Get)
				r.Patch("/", notebookHandler.Update)
				r.Delete("/", notebookHandler.Delete)

				r.Route("/notes", func(r chi.Router) {
					r.Get("/", noteHandler.List)
					r.Post("/", noteHandler.Create)

					r.Route("/{title}", func(r chi.Router) {
						r.Get("/", noteHandler.Get)
						r.Patch("/", noteHandler.Update)
						r.Delete("/", noteHandler.Delete)

						r.Get("/content", noteHandler.GetContent)
						r.Put("/content", noteHandler.PutContent)
						r.Get("/find", noteHandler.Find)
						r.Post("/replace", noteHandler.Replace)

						r.Get("/tags", noteHandler.ListTags)
						r.Post("/tags", noteHandler.AddTag)
						r.Delete("/tags", noteHandler.ClearTags)
						r.Delete("/tags/{tag}", noteHandler.RemoveTag)
					})
				})
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", tagHandler.List)
			r.Post("/", tagHandler.Create)

			r.Route("/{tag}", func(r chi.Router) {
				r.Get("/", tagHandler.Get)
				r.Patch("/", tagHandler.Rename)
				r.Delete("/", tagHandler.Delete)
				r.Get("/notes", tagHandler.Notes)
				r.Delete("/notes", tagHandler.ClearNotes)
			})
		})
	})

	return r
}
