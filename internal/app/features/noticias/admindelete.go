// internal/app/features/noticias/admindelete.go
package noticias

import (
	"context"
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

// HandleDelete removes a noticia permanently. Unpublishing without
// deleting is done with HandleSetPublished instead.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Noticia inválida.", "/admin/noticias")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := newsstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete noticia failed", err, "No se pudo eliminar la noticia.", "/admin/noticias")
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, r, "Noticia no encontrada.", "/admin/noticias")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventNoticiaDeleted, g.UserID, oid, nil)

	http.Redirect(w, r, "/admin/noticias", http.StatusSeeOther)
}
