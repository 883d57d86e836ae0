// internal/app/features/noticias/adminnew.go
package noticias

import (
	"context"
	"net/http"

	"github.com/ceitm/platform/internal/app/store/audit"
	newsstore "github.com/ceitm/platform/internal/app/store/news"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/domain/models"
)

// ServeNew renders the New Noticia form.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin"); !g.OK {
		return
	}

	h.renderForm(w, r, formVMFrom(r, models.NewsItem{Published: true}, false, ""))
}

// HandleCreate processes the New Noticia form POST. The slug is generated
// from the title here and stays stable for the life of the item.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin")
	if !g.OK {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/noticias")
		return
	}

	n, msg := parseNewsForm(r)
	if msg != "" {
		h.renderForm(w, r, formVMFrom(r, n, false, msg))
		return
	}
	n.AuthorID = &g.UserID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := newsstore.New(h.DB).Create(ctx, n)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create noticia failed", err, "No se pudo guardar la noticia.", "/admin/noticias")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventNoticiaCreated, g.UserID, created.ID, map[string]string{
		"title": created.Title,
		"slug":  created.Slug,
	})

	http.Redirect(w, r, "/admin/noticias", http.StatusSeeOther)
}
