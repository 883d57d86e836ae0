// internal/app/features/estructura/routes.go
package estructura

import (
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public structure pages (typically under "/estructura").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeStructure)

	// REPRESENTATIVE MODAL (HTMX)
	r.Get("/{id}/modal", h.ServeModal)

	return r
}

// AdminRoutes mounts the roster management routes (typically under
// "/admin/estructura"). Capability checks happen in the handlers via gates.
func AdminRoutes(h *AdminHandler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		// LIST (live search + HTMX table swap)
		pr.Get("/", h.ServeList)

		// CREATE
		pr.Get("/new", h.ServeNew)
		pr.Post("/", h.HandleCreate)

		// EDIT
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)

		// DELETE
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
