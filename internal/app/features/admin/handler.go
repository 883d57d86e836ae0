// internal/app/features/admin/handler.go
package admin

import (
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/app/system/gates"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin panel landing page. The panel only links to the
// sections the signed-in user can actually manage; the sections gate
// themselves again on entry.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

type panelVM struct {
	viewdata.BaseVM

	CanConvenios bool
	CanNoticias  bool
	CanUsers     bool
}

// ServePanel renders the admin landing page.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	g := gates.RequireAuth(w, r, "/login")
	if !g.OK {
		return
	}

	if !authz.HasAnyAdminCapability(r) {
		uierrors.RenderForbidden(w, r, "Tu cuenta no tiene acceso al panel de administración.", "/")
		return
	}

	vm := panelVM{
		BaseVM:       viewdata.NewBaseVM(r, "Panel de administración", "/"),
		CanConvenios: authz.CanManageConvenios(r),
		CanNoticias:  authz.CanManageNoticias(r),
		CanUsers:     authz.Has(r, authz.CapManageUsers),
	}

	templates.Render(w, r, "admin_panel", vm)
}
