// internal/app/features/noticias/routes.go
package noticias

import (
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public noticias pages (typically under "/noticias").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST (category tabs + paging, HTMX grid swap)
	r.Get("/", h.ServeList)

	// DETAIL (permalink by slug)
	r.Get("/{slug}", h.ServeDetail)

	return r
}

// AdminRoutes mounts the admin noticia routes (typically under
// "/admin/noticias"). Capability checks happen in the handlers via gates.
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		// EDIT
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
		pr.Post("/{id}/published", h.HandleSetPublished)

		// DELETE
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
