// internal/app/features/noticias/adminedit.go
package noticias

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/store/audit"
	newsstore "github.com/ceitm/platform/internal/app/store/news"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeEdit renders the Edit Noticia form prefilled with the stored item.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin"); !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Noticia inválida.", "/admin/noticias")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := newsstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Noticia no encontrada.", "/admin/noticias")
		return
	}

	h.renderForm(w, r, formVMFrom(r, item, true, ""))
}

// HandleEdit processes the Edit Noticia form POST. The slug never changes
// on edit, so previously shared links keep resolving.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Noticia inválida.", "/admin/noticias")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/noticias")
		return
	}

	n, msg := parseNewsForm(r)
	if msg != "" {
		n.ID = oid
		h.renderForm(w, r, formVMFrom(r, n, true, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := newsstore.New(h.DB).Update(ctx, oid, n); err != nil {
		if errors.Is(err, newsstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Noticia no encontrada.", "/admin/noticias")
			return
		}
		h.ErrLog.LogServerError(w, r, "update noticia failed", err, "No se pudo guardar la noticia.", "/admin/noticias")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventNoticiaUpdated, g.UserID, oid, map[string]string{
		"title": n.Title,
	})

	http.Redirect(w, r, "/admin/noticias", http.StatusSeeOther)
}

// HandleSetPublished toggles an item between published and draft.
func (h *AdminHandler) HandleSetPublished(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Noticia inválida.", "/admin/noticias")
		return
	}

	published := r.FormValue("published") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := newsstore.New(h.DB).SetPublished(ctx, oid, published); err != nil {
		if errors.Is(err, newsstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Noticia no encontrada.", "/admin/noticias")
			return
		}
		h.ErrLog.LogServerError(w, r, "set noticia published failed", err, "No se pudo actualizar la noticia.", "/admin/noticias")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventNoticiaUpdated, g.UserID, oid, map[string]string{
		"published": r.FormValue("published"),
	})

	http.Redirect(w, r, "/admin/noticias", http.StatusSeeOther)
}
