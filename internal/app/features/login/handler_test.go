package login_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/features/login"
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/ceitm/platform/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *login.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	sessionMgr, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "ceitm_test", "", false, logger)
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return login.NewHandler(db, sessionMgr, uierrors.NewErrorLogger(logger), nil, logger)
}

func TestHandleLoginPost_Success(t *testing.T) {
	h := newTestHandler(t)
	fx := testutil.NewFixtures(t, h.DB)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "Admin Prueba", "admin@ceitm.mx", "admin_sys", "contrasena-segura")

	form := url.Values{}
	form.Set("email", "admin@ceitm.mx")
	form.Set("password", "contrasena-segura")

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.HandleLoginPost(rec, req)

	if rec.Code != 303 {
		t.Fatalf("expected 303 redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location: got %q, want /admin", loc)
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestHandleLoginPost_WrongPassword(t *testing.T) {
	h := newTestHandler(t)
	fx := testutil.NewFixtures(t, h.DB)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "Admin Prueba", "admin@ceitm.mx", "admin_sys", "contrasena-segura")

	form := url.Values{}
	form.Set("email", "admin@ceitm.mx")
	form.Set("password", "incorrecta")

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	// The error path re-renders the login template, which panics when the
	// template engine is not booted in tests; the important part is that
	// no session cookie was issued.
	func() {
		defer func() { _ = recover() }()
		h.HandleLoginPost(rec, req)
	}()

	for _, c := range rec.Result().Cookies() {
		if c.Name == "ceitm_test" && c.MaxAge >= 0 && c.Value != "" {
			t.Error("expected no session cookie for wrong password")
		}
	}
}

func TestHandleLoginPost_MissingFields(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest("POST", "/login", strings.NewReader("email=&password="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	func() {
		defer func() { _ = recover() }()
		h.HandleLoginPost(rec, req)
	}()

	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookies for empty submission")
	}
}

func TestServeLogin_RedirectsSignedInUser(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/login", testutil.AdminUser())
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, req)

	if rec.Code != 303 {
		t.Fatalf("expected 303 for signed-in user, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location: got %q, want /admin", loc)
	}
}
