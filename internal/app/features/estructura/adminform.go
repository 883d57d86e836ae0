// internal/app/features/estructura/adminform.go
package estructura

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/store/audit"
	rosterstore "github.com/ceitm/platform/internal/app/store/roster"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// parseMemberForm reads the submitted form fields into a CouncilMember.
// Returns a user-facing validation message when the name is missing, the
// role is unknown, or the area does not admit the chosen role.
func parseMemberForm(r *http.Request) (models.CouncilMember, string) {
	m := models.CouncilMember{
		FullName:  strings.TrimSpace(r.FormValue("full_name")),
		Role:      strings.TrimSpace(r.FormValue("role")),
		AreaID:    strings.TrimSpace(r.FormValue("area_id")),
		Career:    strings.TrimSpace(r.FormValue("career")),
		ImageURL:  strings.TrimSpace(r.FormValue("image_url")),
		Instagram: strings.TrimSpace(r.FormValue("instagram")),
		Phone:     strings.TrimSpace(r.FormValue("phone")),
		Active:    r.FormValue("active") != "",
	}

	if m.FullName == "" {
		return m, "El nombre completo es obligatorio."
	}

	validRole := false
	for _, role := range memberRoles {
		if role.ID == m.Role {
			validRole = true
			break
		}
	}
	if !validRole {
		return m, "Selecciona un rol válido."
	}

	if m.AreaID != "" {
		coord, ok := models.CoordinationByID(m.AreaID)
		if !ok {
			return m, "Selecciona un área válida."
		}
		allowed := false
		for _, role := range coord.AllowedRoles {
			if role == m.Role {
				allowed = true
				break
			}
		}
		if !allowed {
			return m, "El rol seleccionado no puede asignarse a esa área."
		}
	}

	return m, ""
}

func memberFormVM(r *http.Request, m models.CouncilMember, isEdit bool, errMsg string) formVM {
	title := "Nuevo integrante"
	if isEdit {
		title = "Editar integrante"
	}

	return formVM{
		BaseVM:    viewdata.NewBaseVM(r, title, "/admin/estructura"),
		IsEdit:    isEdit,
		ID:        m.ID.Hex(),
		FullName:  m.FullName,
		Role:      m.Role,
		AreaID:    m.AreaID,
		Career:    m.Career,
		ImageURL:  m.ImageURL,
		Instagram: m.Instagram,
		Phone:     m.Phone,
		Active:    m.Active,
		Roles:     memberRoles,
		Areas:     models.Coordinations,
		ErrorMsg:  errMsg,
	}
}

func (h *AdminHandler) renderForm(w http.ResponseWriter, r *http.Request, vm formVM) {
	templates.Render(w, r, "estructura_member_form", vm)
}

// ServeNew renders the New Member form.
func (h *AdminHandler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageUsers, "No tienes permiso para administrar la estructura.", "/admin"); !g.OK {
		return
	}

	h.renderForm(w, r, memberFormVM(r, models.CouncilMember{Active: true}, false, ""))
}

// HandleCreate processes the New Member form POST.
func (h *AdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, "No tienes permiso para administrar la estructura.", "/admin")
	if !g.OK {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/estructura")
		return
	}

	m, msg := parseMemberForm(r)
	if msg != "" {
		h.renderForm(w, r, memberFormVM(r, m, false, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := rosterstore.New(h.DB).Create(ctx, m)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "create council member failed", err, "No se pudo guardar el integrante.", "/admin/estructura")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventMemberCreated, g.UserID, created.ID, map[string]string{
		"full_name": created.FullName,
		"role":      created.Role,
		"area_id":   created.AreaID,
	})

	http.Redirect(w, r, "/admin/estructura", http.StatusSeeOther)
}

// ServeEdit renders the Edit Member form prefilled with the stored record.
func (h *AdminHandler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageUsers, "No tienes permiso para administrar la estructura.", "/admin"); !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Integrante inválido.", "/admin/estructura")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	m, err := rosterstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Integrante no encontrado.", "/admin/estructura")
		return
	}

	h.renderForm(w, r, memberFormVM(r, m, true, ""))
}

// HandleEdit processes the Edit Member form POST.
func (h *AdminHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, "No tienes permiso para administrar la estructura.", "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Integrante inválido.", "/admin/estructura")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/estructura")
		return
	}

	m, msg := parseMemberForm(r)
	if msg != "" {
		m.ID = oid
		h.renderForm(w, r, memberFormVM(r, m, true, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := rosterstore.New(h.DB).Update(ctx, oid, m); err != nil {
		if errors.Is(err, rosterstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Integrante no encontrado.", "/admin/estructura")
			return
		}
		h.ErrLog.LogServerError(w, r, "update council member failed", err, "No se pudo guardar el integrante.", "/admin/estructura")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventMemberUpdated, g.UserID, oid, map[string]string{
		"full_name": m.FullName,
		"role":      m.Role,
		"area_id":   m.AreaID,
	})

	http.Redirect(w, r, "/admin/estructura", http.StatusSeeOther)
}
