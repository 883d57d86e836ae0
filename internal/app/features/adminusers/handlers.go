// internal/app/features/adminusers/handlers.go
package adminusers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/store/audit"
	userstore "github.com/ceitm/platform/internal/app/store/users"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const forbiddenMsg = "No tienes permiso para administrar usuarios."

// ServeList displays every platform account.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin"); !g.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := userstore.New(h.DB).List(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list users failed", err, "Ocurrió un error de base de datos.", "/admin")
		return
	}

	items := make([]listRow, 0, len(rows))
	for _, u := range rows {
		areaLabel := ""
		if coord, ok := models.CoordinationByID(u.AreaID); ok {
			areaLabel = coord.Label
		}
		items = append(items, listRow{
			ID:        u.ID.Hex(),
			FullName:  u.FullName,
			Email:     u.Email,
			RoleLabel: roleLabel(u.Role),
			AreaLabel: areaLabel,
			Active:    u.Active,
		})
	}

	vm := listVM{
		BaseVM: viewdata.NewBaseVM(r, "Usuarios", "/admin"),
		Items:  items,
	}

	templates.Render(w, r, "users_admin_list", vm)
}

// parseAccountForm reads the account form fields. The password is returned
// separately; empty means "unchanged" on edit and is rejected on create.
func parseAccountForm(r *http.Request) (models.User, string, string) {
	u := models.User{
		FullName: strings.TrimSpace(r.FormValue("full_name")),
		Email:    strings.TrimSpace(strings.ToLower(r.FormValue("email"))),
		Role:     strings.TrimSpace(r.FormValue("role")),
		AreaID:   strings.TrimSpace(r.FormValue("area_id")),
		Active:   r.FormValue("active") != "",
	}
	password := r.FormValue("password")

	validRole := false
	for _, role := range accountRoles {
		if role.ID == u.Role {
			validRole = true
			break
		}
	}

	switch {
	case u.FullName == "":
		return u, password, "El nombre completo es obligatorio."
	case u.Email == "":
		return u, password, "El correo es obligatorio."
	case !validRole:
		return u, password, "Selecciona un rol válido."
	}

	if u.AreaID != "" {
		if _, ok := models.CoordinationByID(u.AreaID); !ok {
			return u, password, "Selecciona un área válida."
		}
	}
	return u, password, ""
}

func accountFormVM(r *http.Request, u models.User, isEdit bool, errMsg string) formVM {
	title := "Nuevo usuario"
	if isEdit {
		title = "Editar usuario"
	}
	return formVM{
		BaseVM:   viewdata.NewBaseVM(r, title, "/admin/usuarios"),
		IsEdit:   isEdit,
		ID:       u.ID.Hex(),
		FullName: u.FullName,
		Email:    u.Email,
		Role:     u.Role,
		AreaID:   u.AreaID,
		Active:   u.Active,
		Roles:    accountRoles,
		Areas:    models.Coordinations,
		ErrorMsg: errMsg,
	}
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, vm formVM) {
	templates.Render(w, r, "users_admin_form", vm)
}

// ServeNew renders the New Account form.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin"); !g.OK {
		return
	}

	h.renderForm(w, r, accountFormVM(r, models.User{Active: true}, false, ""))
}

// HandleCreate processes the New Account form POST.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin")
	if !g.OK {
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/usuarios")
		return
	}

	u, password, msg := parseAccountForm(r)
	if msg == "" && len(password) < 8 {
		msg = "La contraseña debe tener al menos 8 caracteres."
	}
	if msg != "" {
		h.renderForm(w, r, accountFormVM(r, u, false, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := userstore.New(h.DB).Create(ctx, u, password)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			h.renderForm(w, r, accountFormVM(r, u, false, "Ya existe una cuenta con ese correo."))
			return
		}
		h.ErrLog.LogServerError(w, r, "create user failed", err, "No se pudo crear la cuenta.", "/admin/usuarios")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventUserCreated, g.UserID, created.ID, map[string]string{
		"email": created.Email,
		"role":  created.Role,
	})

	http.Redirect(w, r, "/admin/usuarios", http.StatusSeeOther)
}

// ServeEdit renders the Edit Account form prefilled with the stored record.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	if g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin"); !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Usuario inválido.", "/admin/usuarios")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, oid)
	if err != nil {
		uierrors.RenderNotFound(w, r, "Usuario no encontrado.", "/admin/usuarios")
		return
	}

	h.renderForm(w, r, accountFormVM(r, u, true, ""))
}

// HandleEdit processes the Edit Account form POST. Leaving the password
// blank keeps the current one.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Usuario inválido.", "/admin/usuarios")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Formulario inválido.", "/admin/usuarios")
		return
	}

	u, password, msg := parseAccountForm(r)
	if msg == "" && password != "" && len(password) < 8 {
		msg = "La contraseña debe tener al menos 8 caracteres."
	}
	if msg != "" {
		u.ID = oid
		h.renderForm(w, r, accountFormVM(r, u, true, msg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := userstore.New(h.DB).Update(ctx, oid, u, password); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Usuario no encontrado.", "/admin/usuarios")
			return
		}
		h.ErrLog.LogServerError(w, r, "update user failed", err, "No se pudo guardar la cuenta.", "/admin/usuarios")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventUserUpdated, g.UserID, oid, map[string]string{
		"email": u.Email,
		"role":  u.Role,
	})

	http.Redirect(w, r, "/admin/usuarios", http.StatusSeeOther)
}

// HandleSetActive enables or disables an account. A disabled account is
// signed out on its next request by the session user fetcher.
func (h *Handler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Usuario inválido.", "/admin/usuarios")
		return
	}

	if oid == g.UserID {
		uierrors.RenderForbidden(w, r, "No puedes desactivar tu propia cuenta.", "/admin/usuarios")
		return
	}

	active := r.FormValue("active") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := userstore.New(h.DB).SetActive(ctx, oid, active); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			uierrors.RenderNotFound(w, r, "Usuario no encontrado.", "/admin/usuarios")
			return
		}
		h.ErrLog.LogServerError(w, r, "set user active failed", err, "No se pudo actualizar la cuenta.", "/admin/usuarios")
		return
	}

	event := audit.EventUserDisabled
	if active {
		event = audit.EventUserEnabled
	}
	h.AuditLog.AdminAction(ctx, r, event, g.UserID, oid, nil)

	http.Redirect(w, r, "/admin/usuarios", http.StatusSeeOther)
}

// HandleDelete removes an account permanently. Self-deletion is refused.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireCapability(w, r, authz.CapManageUsers, forbiddenMsg, "/admin")
	if !g.OK {
		return
	}

	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderBadRequest(w, r, "Usuario inválido.", "/admin/usuarios")
		return
	}

	if oid == g.UserID {
		uierrors.RenderForbidden(w, r, "No puedes eliminar tu propia cuenta.", "/admin/usuarios")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := userstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "delete user failed", err, "No se pudo eliminar la cuenta.", "/admin/usuarios")
		return
	}
	if deleted == 0 {
		uierrors.RenderNotFound(w, r, "Usuario no encontrado.", "/admin/usuarios")
		return
	}

	h.AuditLog.AdminAction(ctx, r, audit.EventUserDeleted, g.UserID, oid, nil)

	http.Redirect(w, r, "/admin/usuarios", http.StatusSeeOther)
}
