package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avreyes/lingap/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)
		r.Get("/api/dashboard", h.dashboard)

		r.Route("/api/cases", func(r chi.Router) {
			r.Get("/", h.listCases)
			r.Post("/", h.createCase)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getCase)
				r.Put("/", h.updateCase)
				r.Delete("/", h.deleteCase)
				r.Post("/notes", h.addNote)
				r.Post("/services", h.addService)
			})
		})

		// staff account management is restricted to administrators
		r.Route("/api/users", func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdministrator))
			r.Get("/", h.listUsers)
			r.Post("/", h.createUser)
		})
	})

	return router
}
