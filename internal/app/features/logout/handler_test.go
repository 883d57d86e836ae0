package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ceitm/platform/internal/app/features/logout"
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/ceitm/platform/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *logout.Handler {
	t.Helper()
	logger := zap.NewNop()

	sessionMgr, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "ceitm_test", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}

	return logout.NewHandler(sessionMgr, nil, logger)
}

func TestServeLogout_RedirectsToHome(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/logout", testutil.AdminUser())
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location: got %q, want /", loc)
	}
}

func TestServeLogout_ExpiresSessionCookie(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/logout", testutil.AdminUser())
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ceitm_test" {
			found = true
			if c.MaxAge >= 0 {
				t.Errorf("expected expired cookie, got MaxAge=%d", c.MaxAge)
			}
		}
	}
	if !found {
		t.Error("expected a deletion cookie for the session")
	}
}

func TestServeLogout_HTMXUsesHXRedirect(t *testing.T) {
	handler := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/logout", testutil.AdminUser())
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200 for HTMX, got %d", rec.Code)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/" {
		t.Errorf("HX-Redirect: got %q, want /", got)
	}
}
