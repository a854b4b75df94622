package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ricgcw/chms-backend/internal/handlers"
	"github.com/ricgcw/chms-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(middleware.NewLoggerMiddleware(deps.Log).LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		// the SPA is served from a separate origin
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	sh := handlers.NewSystemHandlers(deps)
	r.Get("/health", sh.Health)

	ah := handlers.NewAuthHandlers(deps)
	r.Post("/login", ah.Login)

	members := handlers.NewCollectionHandlers(deps, deps.MemberSvc).Routes()
	ch := handlers.NewContributionHandlers(deps)
	members.Route("/{id}/contributions", func(r chi.Router) {
		r.Get("/", ch.List)
		r.Post("/", ch.Add)
	})
	r.Mount("/members", members)

	r.Mount("/events", handlers.NewCollectionHandlers(deps, deps.EventSvc).Routes())
	r.Mount("/attendance", handlers.NewCollectionHandlers(deps, deps.AttendanceSvc).Routes())
	r.Mount("/transactions", handlers.NewCollectionHandlers(deps, deps.TransactionSvc).Routes())
	r.Mount("/resources", handlers.NewCollectionHandlers(deps, deps.ResourceSvc).Routes())
	r.Mount("/bible-studies", handlers.NewCollectionHandlers(deps, deps.BibleStudySvc).Routes())
	r.Mount("/targets", handlers.NewCollectionHandlers(deps, deps.TargetSvc).Routes())

	return r
}
