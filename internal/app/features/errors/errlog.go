// internal/app/features/errors/errlog.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger pairs structured logging of a failure with rendering the
// user-facing error page. Handlers call one method and return; the internal
// message and error go to the log, the user message goes to the page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger backed by the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs an internal failure and renders the error page with
// a 500 status.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, internalMsg string, err error, userMsg, backURL string) {
	e.Log.Error(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderPage(w, r, http.StatusInternalServerError, "Algo salió mal", userMsg, backURL)
}

// LogBadRequest logs a client input failure and renders the error page with
// a 400 status.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, internalMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderPage(w, r, http.StatusBadRequest, "Solicitud inválida", userMsg, backURL)
}

// LogForbidden logs a denied action and renders the error page with a 403
// status.
func (e *ErrorLogger) LogForbidden(w http.ResponseWriter, r *http.Request, internalMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderPage(w, r, http.StatusForbidden, "Acceso denegado", userMsg, backURL)
}

// HTMXLogServerError is LogServerError for HTMX requests: it renders an
// inline error snippet instead of a full page so the fragment swaps into
// the current view.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, internalMsg string, err error, userMsg, backURL string) {
	e.Log.Error(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderSnippet(w, userMsg)
}

// HTMXLogBadRequest is LogBadRequest for HTMX requests.
func (e *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, internalMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderSnippet(w, userMsg)
}

// HTMXLogForbidden is LogForbidden for HTMX requests.
func (e *ErrorLogger) HTMXLogForbidden(w http.ResponseWriter, r *http.Request, internalMsg string, err error, userMsg, backURL string) {
	e.Log.Warn(internalMsg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method))
	e.renderSnippet(w, userMsg)
}

func (e *ErrorLogger) renderPage(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", newPageData(r, title, userMsg, backURL))
}

func (e *ErrorLogger) renderSnippet(w http.ResponseWriter, userMsg string) {
	templates.RenderSnippet(w, "error_snippet", struct{ Message string }{Message: userMsg})
}
