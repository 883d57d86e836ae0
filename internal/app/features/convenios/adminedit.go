// internal/app/features/convenios/adminedit.go
package convenios

import (
	"context"
	"errors"
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

// ServeEdit renders the Edit Convenio form prefilled with the stored record.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin"); !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Convenio inválido.", "/admin/convenios")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	conv, err := conveniostore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Convenio no encontrado.", "/admin/convenios")
		return
	}

	h.renderForm(w, r, formVMFrom(r, conv, true, ""))
}

// HandleEdit processes the Edit Convenio form POST.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Convenio inválido.", "/admin/convenios")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/convenios")
		return
	}

	c, msg := parseConvenioForm(r)
	if msg != "" {
		c.ID = oid
		h.renderForm(w, r, formVMFrom(r, c, true, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := conveniostore.New(h.DB)
	if err := store.Update(ctx, oid, c); err != nil {
		if errors.Is(err, conveniostore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Convenio no encontrado.", "/admin/convenios")
			return
		}
		h.ErrLog.LogServerError(w, r, "update convenio failed", err, "No se pudo guardar el convenio.", "/admin/convenios")
		return
	}

	h.Cache.Invalidate()
	h.AuditLog.AdminAction(ctx, r, audit.EventConvenioUpdated, g.UserID, oid, map[string]string{
		"name":     c.Name,
		"category": c.Category,
	})

	http.Redirect(w, r, "/admin/convenios", http.StatusSeeOther)
}

// HandleSetActive toggles a convenio between visible and hidden without
// going through the full edit form.
func (h *AdminHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Convenio inválido.", "/admin/convenios")
		return
	}

	active := r.FormValue("active") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := conveniostore.New(h.DB).SetActive(ctx, oid, active); err != nil {
		if errors.Is(err, conveniostore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Convenio no encontrado.", "/admin/convenios")
			return
		}
		h.ErrLog.LogServerError(w, r, "set convenio active failed", err, "No se pudo actualizar el convenio.", "/admin/convenios")
		return
	}

	h.Cache.Invalidate()
	h.AuditLog.AdminAction(ctx, r, audit.EventConvenioUpdated, g.UserID, oid, map[string]string{
		"active": r.FormValue("active"),
	})

	http.Redirect(w, r, "/admin/convenios", http.StatusSeeOther)
}
