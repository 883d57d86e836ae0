// internal/app/features/admin/routes.go
package admin

import (
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin panel landing page (typically under "/admin").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServePanel)
	})

	return r
}
