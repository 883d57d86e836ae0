// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := newPageData(r, "Inicia sesión", "Inicia sesión para continuar.", backURL)
	templates.Render(w, r, "error_forbidden", data)
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, a safe back URL is resolved from the request.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	data := newPageData(r, "Acceso denegado", msg, backURL)
	templates.Render(w, r, "error_forbidden", data)
}

// RenderBadRequest shows a friendly error page for malformed input, such as
// a bad object ID in the URL.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusBadRequest)
	data := newPageData(r, "Solicitud inválida", msg, backURL)
	templates.Render(w, r, "error_page", data)
}

// RenderNotFound shows the not-found page with a message.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	w.WriteHeader(http.StatusNotFound)
	data := newPageData(r, "No encontrado", msg, backURL)
	templates.Render(w, r, "error_notfound", data)
}
