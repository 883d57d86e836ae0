// internal/app/features/convenios/admincommon.go
package convenios

import (
	"net/http"
	"strings"

	"github.com/ceitm/platform/internal/app/system/htmlsanitize"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
)

// parseConvenioForm reads the submitted form fields into a Convenio.
// Returns a user-facing validation message when a required field is
// missing or the category is not one of the known identifiers.
func parseConvenioForm(r *http.Request) (models.Convenio, string) {
	name := strings.TrimSpace(r.FormValue("name"))
	category := strings.TrimSpace(r.FormValue("category"))
	shortText := strings.TrimSpace(r.FormValue("short_text"))

	var benefits []string
	for _, b := range r.Form["benefits"] {
		if b = strings.TrimSpace(b); b != "" {
			benefits = append(benefits, b)
		}
	}

	c := models.Convenio{
		Name:      name,
		Category:  category,
		ShortText: shortText,
		LongText:  htmlsanitize.Content(strings.TrimSpace(r.FormValue("long_text"))),
		ImageURL:  strings.TrimSpace(r.FormValue("image_url")),
		Address:   strings.TrimSpace(r.FormValue("address")),
		Benefits:  benefits,
		Social: models.SocialLinks{
			Web:       strings.TrimSpace(r.FormValue("web")),
			Facebook:  strings.TrimSpace(r.FormValue("facebook")),
			Instagram: strings.TrimSpace(r.FormValue("instagram")),
		},
		Active: r.FormValue("active") != "",
	}

	switch {
	case name == "":
		return c, "El nombre es obligatorio."
	case shortText == "":
		return c, "La descripción corta es obligatoria."
	case !models.IsConvenioCategory(category):
		return c, "Selecciona una categoría válida."
	}
	return c, ""
}

// formVMFrom builds the form view model from a Convenio, for re-rendering
// after a validation failure and for prefilling the edit form.
func formVMFrom(r *http.Request, c models.Convenio, isEdit bool, errMsg string) formVM {
	title := "Nuevo convenio"
	if isEdit {
		title = "Editar convenio"
	}

	benefits := c.Benefits
	if len(benefits) == 0 {
		// The form always offers at least one editable slot.
		benefits = []string{""}
	}

	return formVM{
		BaseVM:       viewdata.NewBaseVM(r, title, "/admin/convenios"),
		IsEdit:       isEdit,
		ID:           c.ID.Hex(),
		Name:         c.Name,
		Category:     c.Category,
		ShortText:    c.ShortText,
		LongText:     c.LongText,
		ImageURL:     c.ImageURL,
		Address:      c.Address,
		Benefits:     benefits,
		Web:          c.Social.Web,
		Facebook:     c.Social.Facebook,
		Instagram:    c.Social.Instagram,
		Active:       c.Active,
		Categories:   models.ConvenioCategories,
		ErrorMsg:     errMsg,
		SubmitReturn: "/admin/convenios",
		DeleteReturn: "/admin/convenios",
	}
}

func (h *AdminHandler) renderForm(w http.ResponseWriter, r *http.Request, vm formVM) {
	templates.Render(w, r, "convenio_form", vm)
}
