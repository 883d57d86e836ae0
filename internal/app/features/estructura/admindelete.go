// internal/app/features/estructura/admindelete.go
package estructura

import (
	"context"
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/store/audit"
	rosterstore "github.com/ceitm/platform/internal/app/store/roster"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete removes a council member from the roster permanently.
func (h *AdminHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, "No tienes permiso para administrar la estructura.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Integrante inválido.", "/admin/estructura")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := rosterstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete council member failed", err, "No se pudo eliminar el integrante.", "/admin/estructura")
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, r, "Integrante no encontrado.", "/admin/estructura")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventMemberDeleted, g.UserID, oid, nil)

	http.Redirect(w, r, "/admin/estructura", http.StatusSeeOther)
}
