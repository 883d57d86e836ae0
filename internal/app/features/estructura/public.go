// internal/app/features/estructura/public.go
package estructura

import (
	"context"
	"net/http"

	rosterstore "github.com/ceitm/platform/internal/app/store/roster"
	"github.com/ceitm/platform/internal/app/system/directory"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeStructure renders the organizational structure page: mesa directiva
// seats first, then the operative coordinations. The grids come straight
// from the fixed coordination table, so this page never touches the
// database; only the modal does.
func (h *Handler) ServeStructure(w http.ResponseWriter, r *http.Request) {
	vm := structureVM{
		BaseVM:     viewdata.NewBaseVM(r, "Estructura", "/"),
		Directiva:  unitCards(models.CoordinationsOfType(models.CoordDirectiva)),
		Operativas: unitCards(models.CoordinationsOfType(models.CoordOperativa)),
	}

	templates.Render(w, r, "estructura", vm)
}

// ServeModal renders the representative modal for one coordination (HTMX).
// A vacant seat and a failed roster load are different outcomes: the first
// renders the modal in its vacant state, the second an error snippet.
func (h *Handler) ServeModal(w http.ResponseWriter, r *http.Request) {
	unitID := chi.URLParam(r, "id")
	coord, ok := models.CoordinationByID(unitID)
	if !ok {
		h.ErrLog.HTMXLogBadRequest(w, r, "unknown coordination", nil, "Área desconocida.", "/estructura")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	roster, err := rosterstore.New(h.DB).List(ctx, rosterstore.Filter{})
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "load roster failed", err, "No pudimos cargar la información del área. Intenta de nuevo.", "/estructura")
		return
	}

	vm := modalVM{
		UnitID:      coord.ID,
		UnitLabel:   coord.Label,
		Description: coord.Description,
		Route:       coord.Route,
	}

	if rep, found := directory.Resolve(coord, roster); found {
		vm.FullName = rep.FullName
		vm.RoleLabel = roleLabel(rep.Role)
		vm.Career = rep.Career
		vm.ImageURL = rep.DisplayImageURL()
		vm.Instagram = rep.Instagram
		vm.Phone = rep.Phone
	} else {
		vm.Vacant = true
	}

	templates.RenderSnippet(w, "estructura_modal", vm)
}

func unitCards(coords []models.Coordination) []unitCard {
	out := make([]unitCard, 0, len(coords))
	for _, c := range coords {
		out = append(out, unitCard{
			ID:          c.ID,
			Label:       c.Label,
			Description: c.Description,
			Route:       c.Route,
		})
	}
	return out
}
