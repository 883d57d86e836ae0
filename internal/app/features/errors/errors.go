// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM

	Message string
}

func newPageData(r *http.Request, title, msg, backURL string) pageData {
	vm := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, "/"),
		Message: msg,
	}
	if backURL != "" {
		vm.BackURL = backURL
	}
	return vm
}

// Handler is the errors feature handler.
// No DB needed; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders a friendly "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	data := newPageData(r, "Acceso denegado", "No tienes permiso para ver esta página.", "/")
	templates.Render(w, r, "error_forbidden", data)
}

// Unauthorized renders a friendly "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := newPageData(r, "Inicia sesión", "Inicia sesión para continuar.", "/login")
	templates.Render(w, r, "error_forbidden", data)
}

// NotFound renders the 404 page. Mounted as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := newPageData(r, "Página no encontrada", "La página que buscas no existe o fue movida.", "/")
	templates.Render(w, r, "error_notfound", data)
}
