// internal/app/features/contacto/routes.go
package contacto

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeContacto)
	return r
}
