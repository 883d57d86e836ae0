// internal/app/features/adminusers/routes.go
package adminusers

import (
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the account management routes (typically under
// "/admin/usuarios"). Capability checks happen in the handlers via gates.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
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
		pr.Post("/{id}/active", h.HandleSetActive)

		// DELETE
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
