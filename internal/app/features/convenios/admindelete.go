// internal/app/features/convenios/admindelete.go
package convenios

import (
	"context"
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/store/audit"
	conveniostore "github.com/ceitm/platform/internal/app/store/convenios"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete removes a convenio permanently. Hiding without deleting is
// done with HandleSetActive instead.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Convenio inválido.", "/admin/convenios")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := conveniostore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete convenio failed", err, "No se pudo eliminar el convenio.", "/admin/convenios")
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, r, "Convenio no encontrado.", "/admin/convenios")
		return
	}

	h.Cache.Invalidate()
	h.AuditLog.AdminAction(ctx, r, audit.EventConvenioDeleted, g.UserID, oid, nil)

	http.Redirect(w, r, "/admin/convenios", http.StatusSeeOther)
}
