// internal/app/features/noticias/public.go
package noticias

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	newsstore "github.com/ceitm/platform/internal/app/store/news"
	"github.com/ceitm/platform/internal/app/system/paging"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeList renders the public noticias list, newest first. Category
// filtering and paging happen server-side; unlisted drafts never appear.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	cat := query.Get(r, "categoria")
	if cat == models.CategoryAll {
		cat = ""
	}
	if cat != "" && !models.IsNewsCategory(cat) {
		cat = ""
	}
	start := paging.ParseStart(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := newsstore.New(h.DB).List(ctx, newsstore.Filter{Category: cat}, paging.Skip(start), paging.LimitPlusOne())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list noticias failed", err, "No pudimos cargar las noticias. Intenta de nuevo.", "/")
		return
	}

	page := paging.TrimPage(&rows, start)
	rng := paging.ComputeRange(start, len(rows))

	cards := make([]newsCard, 0, len(rows))
	for _, n := range rows {
		cards = append(cards, newsCard{
			Slug:          n.Slug,
			Title:         n.Title,
			CategoryLabel: newsCategoryLabel(n.Category),
			Excerpt:       n.Excerpt,
			ImageURL:      n.DisplayImageURL(),
			PublishedAt:   n.CreatedAt,
		})
	}

	vm := listVM{
		BaseVM:     viewdata.NewBaseVM(r, "Noticias", "/"),
		Category:   cat,
		Categories: models.NewsCategories,
		Items:      cards,
		Page:       page,
		Range:      rng,
		Start:      start,
	}

	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "noticias_grid", vm)
		return
	}
	templates.Render(w, r, "noticias_list", vm)
}

// ServeDetail renders one announcement, looked up by slug. Drafts are not
// reachable here even with a correct slug.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := newsstore.New(h.DB).GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, newsstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "La noticia que buscas no existe o fue retirada.", "/noticias")
			return
		}
		h.ErrLog.LogServerError(w, r, "get noticia failed", err, "No pudimos cargar la noticia.", "/noticias")
		return
	}

	vm := detailVM{
		BaseVM:        viewdata.NewBaseVM(r, item.Title, "/noticias"),
		Slug:          item.Slug,
		NewsTitle:     item.Title,
		CategoryLabel: newsCategoryLabel(item.Category),
		Content:       template.HTML(item.Content),
		ImageURL:      item.ImageURL,
		VideoURL:      item.VideoURL,
		PublishedAt:   item.CreatedAt,
	}

	templates.Render(w, r, "noticia_detail", vm)
}

func newsCategoryLabel(id string) string {
	for _, c := range models.NewsCategories {
		if c.ID == id {
			return c.Label
		}
	}
	return id
}
