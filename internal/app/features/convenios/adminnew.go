// internal/app/features/convenios/adminnew.go
package convenios

import (
	"context"
	"net/http"

	"github.com/ceitm/platform/internal/app/store/audit"
	conveniostore "github.com/ceitm/platform/internal/app/store/convenios"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/domain/models"
)

// ServeNew renders the New Convenio form.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin"); !g.OK {
		return
	}

	h.renderForm(w, r, formVMFrom(r, models.Convenio{Active: true}, false, ""))
}

// HandleCreate processes the New Convenio form POST.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin")
	if !g.OK {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/convenios")
		return
	}

	c, msg := parseConvenioForm(r)
	if msg != "" {
		h.renderForm(w, r, formVMFrom(r, c, false, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := conveniostore.New(h.DB).Create(ctx, c)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create convenio failed", err, "No se pudo guardar el convenio.", "/admin/convenios")
		return
	}

	h.Cache.Invalidate()
	h.AuditLog.AdminAction(ctx, r, audit.EventConvenioCreated, g.UserID, created.ID, map[string]string{
		"name":     created.Name,
		"category": created.Category,
	})

	http.Redirect(w, r, "/admin/convenios", http.StatusSeeOther)
}
