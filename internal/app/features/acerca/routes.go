// internal/app/features/acerca/routes.go
package acerca

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAcerca)
	return r
}
