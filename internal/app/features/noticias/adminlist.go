// internal/app/features/noticias/adminlist.go
package noticias

import (
	"context"
	"net/http"

	newsstore "github.com/ceitm/platform/internal/app/store/news"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/paging"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList displays the admin list of noticias, drafts included.
func (h *AdminHandler) ServeList(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageNoticias, "No tienes permiso para administrar noticias.", "/admin"); !g.OK {
		return
	}

	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := newsstore.New(h.DB).List(ctx, newsstore.Filter{IncludeUnlisted: true}, paging.Skip(start), paging.AdminLimitPlusOne())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list noticias failed", err, "Ocurrió un error de base de datos.", "/admin")
		return
	}

	page := paging.TrimPageAdmin(&rows, start)
	rng := paging.ComputeRangeAdmin(start, len(rows))

	items := make([]adminRow, 0, len(rows))
	for _, n := range rows {
		items = append(items, adminRow{
			ID:            n.ID.Hex(),
			Title:         n.Title,
			Slug:          n.Slug,
			CategoryLabel: newsCategoryLabel(n.Category),
			Published:     n.Published,
			CreatedAt:     n.CreatedAt,
		})
	}

	vm := adminListVM{
		BaseVM: viewdata.NewBaseVM(r, "Noticias", "/admin"),
		Items:  items,
		Page:   page,
		Range:  rng,
		Start:  start,
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "noticias_admin_table", vm)
		return
	}
	templates.Render(w, r, "noticias_admin_list", vm)
}
