// internal/app/features/convenios/adminlist.go
package convenios

import (
	"context"
	"net/http"

	conveniostore "github.com/ceitm/platform/internal/app/store/convenios"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/paging"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeList displays the admin list of convenios, inactive ones included.
// Supports live HTMX search on the case-folded name column.
func (h *AdminHandler) ServeList(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageConvenios, "No tienes permiso para administrar convenios.", "/admin"); !g.OK {
		return
	}

	q := query.Search(r, "q")
	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := conveniostore.New(h.DB)
	rows, err := store.List(ctx, conveniostore.Filter{
		Search:          q,
		IncludeInactive: true,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list convenios failed", err, "Ocurrió un error de base de datos.", "/admin")
		return
	}

	// The catalog is directory scale, so paging slices the in-memory list
	// with one look-ahead row rather than issuing cursor queries.
	skip := int(paging.Skip(start))
	if skip > len(rows) {
		skip = len(rows)
	}
	end := skip + paging.AdminPageSize + 1
	if end > len(rows) {
		end = len(rows)
	}
	window := rows[skip:end]
	page := paging.TrimPageAdmin(&window, start)
	rng := paging.ComputeRangeAdmin(start, len(window))

	items := make([]adminRow, 0, len(window))
	for _, c := range window {
		items = append(items, adminRow{
			ID:            c.ID.Hex(),
			Name:          c.Name,
			CategoryLabel: models.ConvenioCategoryLabel(c.Category),
			ShortText:     c.ShortText,
			Active:        c.Active,
		})
	}

	vm := adminListVM{
		BaseVM: viewdata.NewBaseVM(r, "Convenios", "/admin"),
		Q:      q,
		Items:  items,
		Page:   page,
		Range:  rng,
		Start:  start,
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "convenios_admin_table", vm)
		return
	}
	templates.Render(w, r, "convenios_admin_list", vm)
}
