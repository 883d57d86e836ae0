// internal/app/features/convenios/routes.go
package convenios

import (
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public convenio directory under whatever base path the
// caller chooses (typically "/convenios" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LIST (live search + HTMX grid swap)
	r.Get("/", h.ServeDirectory)

	// DETAIL MODAL (HTMX)
	r.Get("/{id}/modal", h.ServeModal)

	return r
}

// AdminRoutes mounts the admin convenio routes (typically under
// "/admin/convenios"). Capability checks happen in the handlers via gates,
// since the requirement depends on the coordinator's area, not the role.
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
		pr.Post("/{id}/active", h.HandleSetActive)

		// DELETE
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
