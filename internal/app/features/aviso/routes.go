// internal/app/features/aviso/routes.go
package aviso

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAviso)
	return r
}
