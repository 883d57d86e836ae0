package adminusers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/ceitm/platform/internal/app/features/adminusers"
	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	userstore "github.com/ceitm/platform/internal/app/store/users"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/ceitm/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*adminusers.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return adminusers.NewHandler(db, uierrors.NewErrorLogger(logger), nil, logger), db
}

func formRequest(target string, user testutil.TestUser, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, user)
}

func TestHandleCreate_PersistsAccount(t *testing.T) {
	h, db := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{}
	form.Set("full_name", "Coordinadora Comunicación")
	form.Set("email", "Comunicacion@CEITM.mx")
	form.Set("password", "contrasena-segura")
	form.Set("role", models.RoleCoordinador)
	form.Set("area_id", "COMUNICACION")
	form.Set("active", "1")

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, formRequest("/admin/usuarios", testutil.AdminUser(), form))

	if rec.Code != 303 {
		t.Fatalf("expected 303 redirect, got %d", rec.Code)
	}

	u, err := userstore.New(db).GetByEmail(ctx, "comunicacion@ceitm.mx")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if u.Role != models.RoleCoordinador || u.AreaID != "COMUNICACION" {
		t.Errorf("unexpected account: %+v", u)
	}
}

func TestHandleCreate_ShortPasswordRejected(t *testing.T) {
	h, db := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	form := url.Values{}
	form.Set("full_name", "Alguien")
	form.Set("email", "alguien@ceitm.mx")
	form.Set("password", "corta")
	form.Set("role", models.RoleVocal)

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		h.HandleCreate(rec, formRequest("/admin/usuarios", testutil.AdminUser(), form))
	}()

	if _, err := userstore.New(db).GetByEmail(ctx, "alguien@ceitm.mx"); err == nil {
		t.Error("account with short password should not persist")
	}
}

func TestHandleSetActive_RefusesSelf(t *testing.T) {
	h, _ := newHandler(t)

	admin := testutil.AdminUser()

	form := url.Values{}
	form.Set("active", "false")
	rec := httptest.NewRecorder()
	req := testutil.WithChiURLParam(formRequest("/admin/usuarios/"+admin.ID+"/active", admin, form), "id", admin.ID)

	// The refusal renders the forbidden page; no template engine in tests.
	func() {
		defer func() { _ = recover() }()
		h.HandleSetActive(rec, req)
	}()

	if rec.Code == 303 {
		t.Error("self-deactivation must not redirect as success")
	}
}

func TestHandleDelete_RemovesAccount(t *testing.T) {
	h, db := newHandler(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Vocal Saliente", "vocal@ceitm.mx", models.RoleVocal, "contrasena-segura")

	rec := httptest.NewRecorder()
	req := testutil.WithChiURLParam(formRequest("/admin/usuarios/"+u.ID.Hex()+"/delete", testutil.AdminUser(), url.Values{}), "id", u.ID.Hex())
	h.HandleDelete(rec, req)

	if rec.Code != 303 {
		t.Fatalf("expected 303 redirect, got %d", rec.Code)
	}
	if _, err := userstore.New(db).GetByID(ctx, u.ID); err == nil {
		t.Error("deleted account still present")
	}
}
