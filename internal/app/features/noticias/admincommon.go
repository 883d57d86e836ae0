// internal/app/features/noticias/admincommon.go
package noticias

import (
	"net/http"
	"strings"

	"github.com/ceitm/platform/internal/app/system/htmlsanitize"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// parseNewsForm reads the submitted form fields into a NewsItem. The rich
// content field is sanitized before it ever reaches storage. Returns a
// user-facing validation message when a required field is missing.
func parseNewsForm(r *http.Request) (models.NewsItem, string) {
	title := strings.TrimSpace(r.FormValue("title"))
	category := strings.TrimSpace(r.FormValue("category"))
	content := htmlsanitize.Content(strings.TrimSpace(r.FormValue("content")))

	n := models.NewsItem{
		Title:     title,
		Category:  category,
		Excerpt:   strings.TrimSpace(r.FormValue("excerpt")),
		Content:   content,
		ImageURL:  strings.TrimSpace(r.FormValue("image_url")),
		VideoURL:  strings.TrimSpace(r.FormValue("video_url")),
		Published: r.FormValue("published") != "",
	}

	switch {
	case title == "":
		return n, "El título es obligatorio."
	case !models.IsNewsCategory(category):
		return n, "Selecciona una categoría válida."
	case content == "":
		return n, "El contenido es obligatorio."
	}
	return n, ""
}

// formVMFrom builds the form view model from a NewsItem, for re-rendering
// after a validation failure and for prefilling the edit form.
func formVMFrom(r *http.Request, n models.NewsItem, isEdit bool, errMsg string) formVM {
	title := "Nueva noticia"
	if isEdit {
		title = "Editar noticia"
	}

	return formVM{
		BaseVM:     viewdata.NewBaseVM(r, title, "/admin/noticias"),
		IsEdit:     isEdit,
		ID:         n.ID.Hex(),
		Slug:       n.Slug,
		NewsTitle:  n.Title,
		Category:   n.Category,
		Excerpt:    n.Excerpt,
		Content:    n.Content,
		ImageURL:   n.ImageURL,
		VideoURL:   n.VideoURL,
		Published:  n.Published,
		Categories: models.NewsCategories,
		ErrorMsg:   errMsg,
	}
}

func (h *AdminHandler) renderForm(w http.ResponseWriter, r *http.Request, vm formVM) {
	templates.Render(w, r, "noticia_form", vm)
}
