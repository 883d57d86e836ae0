// Package authz maps council roles to the capabilities that gate the admin
// surface. Capabilities are named permission flags checked synchronously
// against the session user via Has(r, capability).
package authz

import (
	"net/http"
	"strings"

	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/ceitm/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Capability names. These are stable identifiers, not display strings.
const (
	CapManageConvenios = "manage_convenios"
	CapManageNoticias  = "manage_noticias"
	CapManageUsers     = "manage_users"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present or the user ID is malformed it returns
// "visitor", "", NilObjectID, false, so ok=true always means a valid,
// authenticated user.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session: fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// Has reports whether the current request's user holds the named capability.
// Unknown capability names are simply never held.
func Has(r *http.Request, capability string) bool {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return false
	}
	return roleHas(strings.ToLower(user.Role), user.AreaID, capability)
}

// CanManageConvenios reports whether the user may create/edit/delete
// convenio records. admin_sys and estructura always can; a coordinador can
// only when heading Vinculación, the area that owns partner agreements.
func CanManageConvenios(r *http.Request) bool {
	return Has(r, CapManageConvenios)
}

// CanManageNoticias reports whether the user may manage news. admin_sys and
// estructura always can; coordinadores of Comunicación and Marketing can.
func CanManageNoticias(r *http.Request) bool {
	return Has(r, CapManageNoticias)
}

// HasAnyAdminCapability reports whether the user holds at least one of the
// admin capabilities. Gates the shared admin chrome and the upload endpoint.
func HasAnyAdminCapability(r *http.Request) bool {
	for _, c := range []string{CapManageConvenios, CapManageNoticias, CapManageUsers} {
		if Has(r, c) {
			return true
		}
	}
	return false
}

func roleHas(role, areaID, capability string) bool {
	switch role {
	case models.RoleAdminSys, models.RoleEstructura:
		switch capability {
		case CapManageConvenios, CapManageNoticias, CapManageUsers:
			return true
		}
		return false
	case models.RoleCoordinador:
		switch capability {
		case CapManageConvenios:
			return areaID == "VINCULACION"
		case CapManageNoticias:
			return areaID == "COMUNICACION" || areaID == "MARKETING"
		}
		return false
	default:
		return false
	}
}
