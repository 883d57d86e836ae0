// internal/app/features/concejales/routes.go
package concejales

import "github.com/go-chi/chi/v5"

// Routes mounts the public concejales page (typically under "/concejales").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
