// internal/app/features/estructura/adminlist.go
package estructura

import (
	"context"
	"net/http"
	"strings"

	rosterstore "github.com/ceitm/platform/internal/app/store/roster"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
)

// ServeList displays the admin roster of council members, inactive ones
// included. Supports live HTMX search on the case-folded name.
func (h *AdminHandler) ServeList(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageUsers, "No tienes permiso para administrar la estructura.", "/admin"); !g.OK {
		return
	}

	q := query.Search(r, "q")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := rosterstore.New(h.DB).List(ctx, rosterstore.Filter{IncludeInactive: true})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list council members failed", err, "Ocurrió un error de base de datos.", "/admin")
		return
	}

	folded := text.Fold(q)
	items := make([]adminRow, 0, len(rows))
	for _, m := range rows {
		if folded != "" && !strings.Contains(m.FullNameCI, folded) {
			continue
		}
		areaLabel := m.AreaLabel
		if coord, ok := models.CoordinationByID(m.AreaID); ok {
			areaLabel = coord.Label
		}
		items = append(items, adminRow{
			ID:        m.ID.Hex(),
			FullName:  m.FullName,
			RoleLabel: roleLabel(m.Role),
			AreaLabel: areaLabel,
			Career:    m.Career,
			Active:    m.Active,
		})
	}

	vm := adminListVM{
		BaseVM: viewdata.NewBaseVM(r, "Estructura", "/admin"),
		Q:      q,
		Items:  items,
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "estructura_admin_table", vm)
		return
	}
	templates.Render(w, r, "estructura_admin_list", vm)
}
