// internal/app/features/uploads/routes.go
package uploads

import (
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the upload endpoint (typically under "/admin/uploads").
// The capability check happens in the handler; any admin capability grants
// upload access.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Post("/image", h.HandleUpload)
	})

	return r
}
