package authz_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func requestAs(role, areaID string) *http.Request {
	r := httptest.NewRequest("GET", "/admin/convenios", nil)
	if role == "" {
		return r
	}
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:     primitive.NewObjectID().Hex(),
		Name:   "Test",
		Role:   role,
		AreaID: areaID,
	})
}

func TestUserCtxVisitor(t *testing.T) {
	role, name, uid, ok := authz.UserCtx(requestAs("", ""))
	if ok {
		t.Fatal("no session user: ok should be false")
	}
	if role != "visitor" || name != "" || uid != primitive.NilObjectID {
		t.Errorf("visitor defaults: role=%q name=%q uid=%v", role, name, uid)
	}
}

func TestUserCtxMalformedIDFailsClosed(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = auth.WithTestUser(r, &auth.SessionUser{ID: "not-an-objectid", Role: models.RoleAdminSys})
	if _, _, _, ok := authz.UserCtx(r); ok {
		t.Error("malformed user ID must not authenticate")
	}
}

func TestCapabilityMatrix(t *testing.T) {
	cases := []struct {
		role, area string
		capability string
		want       bool
	}{
		{models.RoleAdminSys, "SISTEMAS", authz.CapManageConvenios, true},
		{models.RoleAdminSys, "SISTEMAS", authz.CapManageNoticias, true},
		{models.RoleAdminSys, "SISTEMAS", authz.CapManageUsers, true},
		{models.RoleEstructura, "PRESIDENCIA", authz.CapManageConvenios, true},
		{models.RoleEstructura, "TESORERIA", authz.CapManageUsers, true},
		{models.RoleCoordinador, "VINCULACION", authz.CapManageConvenios, true},
		{models.RoleCoordinador, "VINCULACION", authz.CapManageNoticias, false},
		{models.RoleCoordinador, "COMUNICACION", authz.CapManageNoticias, true},
		{models.RoleCoordinador, "MARKETING", authz.CapManageNoticias, true},
		{models.RoleCoordinador, "EVENTOS", authz.CapManageNoticias, false},
		{models.RoleCoordinador, "ACADEMICO", authz.CapManageConvenios, false},
		{models.RoleCoordinador, "VINCULACION", authz.CapManageUsers, false},
		{models.RoleConcejal, "CONSEJO_GENERAL", authz.CapManageConvenios, false},
		{models.RoleVocal, "MARKETING", authz.CapManageNoticias, false},
	}

	for _, tc := range cases {
		r := requestAs(tc.role, tc.area)
		if got := authz.Has(r, tc.capability); got != tc.want {
			t.Errorf("Has(%s/%s, %s) = %v, want %v", tc.role, tc.area, tc.capability, got, tc.want)
		}
	}
}

func TestHasUnknownCapability(t *testing.T) {
	r := requestAs(models.RoleAdminSys, "SISTEMAS")
	if authz.Has(r, "launch_rockets") {
		t.Error("unknown capability names are never held")
	}
}

func TestHasSignedOut(t *testing.T) {
	if authz.Has(requestAs("", ""), authz.CapManageConvenios) {
		t.Error("signed-out requests hold no capabilities")
	}
}

func TestHasAnyAdminCapability(t *testing.T) {
	if !authz.HasAnyAdminCapability(requestAs(models.RoleCoordinador, "VINCULACION")) {
		t.Error("vinculación coordinator should reach the admin surface")
	}
	if authz.HasAnyAdminCapability(requestAs(models.RoleVocal, "NINGUNA")) {
		t.Error("vocal holds no admin capability")
	}
}
