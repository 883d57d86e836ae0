// internal/app/features/convenios/directory.go
package convenios

import (
	"context"
	"html/template"
	"net/http"

	conveniostore "github.com/ceitm/platform/internal/app/store/convenios"
	"github.com/ceitm/platform/internal/app/system/listing"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeDirectory renders the public convenios directory. Text search and
// category filters are applied in memory over the cached snapshot; HTMX
// requests get just the grid snippet so the filter bar keeps focus.
func (h *Handler) ServeDirectory(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	cat := query.Get(r, "categoria")
	if cat == "" {
		cat = models.CategoryAll
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Cache.Items(ctx)
	if err != nil {
		// A failed load is an error state, never an empty directory.
		if r.Header.Get("HX-Request") == "true" {
			h.ErrLog.HTMXLogServerError(w, r, "load convenios failed", err, "No pudimos cargar los convenios. Intenta de nuevo.", "/convenios")
		} else {
			h.ErrLog.LogServerError(w, r, "load convenios failed", err, "No pudimos cargar los convenios. Intenta de nuevo.", "/")
		}
		return
	}

	ctrl := listing.NewController(items)
	ctrl.SetSearchTerm(q)
	ctrl.SetCategory(cat)
	visible := ctrl.Visible()

	cards := make([]cardVM, 0, len(visible))
	for _, c := range visible {
		cards = append(cards, cardVM{
			ID:            c.ID.Hex(),
			Name:          c.Name,
			Category:      c.Category,
			CategoryLabel: models.ConvenioCategoryLabel(c.Category),
			ShortText:     c.ShortText,
			ImageURL:      c.DisplayImageURL(),
		})
	}

	vm := directoryVM{
		BaseVM:     viewdata.NewBaseVM(r, "Convenios", "/"),
		Q:          ctrl.SearchTerm(),
		Category:   ctrl.Category(),
		Categories: models.ConvenioCategories,
		Items:      cards,
		Total:      len(cards),
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "convenios_grid", vm)
		return
	}
	templates.Render(w, r, "convenios_list", vm)
}

// ServeModal renders the detail modal for one convenio (HTMX).
// Only active records are reachable; the cache holds active records only,
// with a direct lookup as fallback for a snapshot refreshed mid-session.
func (h *Handler) ServeModal(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.HTMXLogBadRequest(w, r, "bad convenio id", err, "Convenio inválido.", "/convenios")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	conv, ok := h.lookup(ctx, oid)
	if !ok {
		templates.RenderSnippet(w, "convenio_modal_missing", struct{}{})
		return
	}

	vm := modalVM{
		ID:            conv.ID.Hex(),
		Name:          conv.Name,
		CategoryLabel: models.ConvenioCategoryLabel(conv.Category),
		ShortText:     conv.ShortText,
		LongText:      template.HTML(conv.LongText),
		ImageURL:      conv.DisplayImageURL(),
		Address:       conv.Address,
		Benefits:      conv.Benefits,
		Social:        conv.Social,
	}

	templates.RenderSnippet(w, "convenio_modal", vm)
}

func (h *Handler) lookup(ctx context.Context, oid primitive.ObjectID) (models.Convenio, bool) {
	if items, err := h.Cache.Items(ctx); err == nil {
		for _, c := range items {
			if c.ID == oid {
				return c, true
			}
		}
	}

	conv, err := conveniostore.New(h.DB).GetByID(ctx, oid)
	if err != nil || !conv.Active {
		return models.Convenio{}, false
	}
	return conv, true
}
