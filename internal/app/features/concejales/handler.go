// internal/app/features/concejales/handler.go
package concejales

import (
	"context"
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	rosterstore "github.com/ceitm/platform/internal/app/store/roster"
	"github.com/ceitm/platform/internal/app/system/directory"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public concejales page: the full council roster grouped
// by organizational unit.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the concejales handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}

type memberCard struct {
	FullName  string
	RoleLabel string
	Career    string
	ImageURL  string
	Instagram string
}

type unitGroup struct {
	Label   string
	Members []memberCard
}

type rosterVM struct {
	viewdata.BaseVM

	Groups []unitGroup
}

var roleLabels = map[string]string{
	models.RoleEstructura:  "Mesa directiva",
	models.RoleCoordinador: "Coordinador",
	models.RoleConcejal:    "Concejal",
	models.RoleVocal:       "Vocal",
}

// ServeList renders the roster grouped in coordination table order. Units
// with nobody assigned are omitted rather than shown empty.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	roster, err := rosterstore.New(h.DB).List(ctx, rosterstore.Filter{})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load roster failed", err, "No pudimos cargar el directorio. Intenta de nuevo.", "/")
		return
	}

	var groups []unitGroup
	for _, coord := range models.Coordinations {
		if coord.Type == models.CoordAdministrativa {
			continue
		}
		members := directory.Members(coord, roster)
		if len(members) == 0 {
			continue
		}

		g := unitGroup{Label: coord.Label}
		for _, m := range members {
			label := roleLabels[m.Role]
			if label == "" {
				label = m.Role
			}
			g.Members = append(g.Members, memberCard{
				FullName:  m.FullName,
				RoleLabel: label,
				Career:    m.Career,
				ImageURL:  m.DisplayImageURL(),
				Instagram: m.Instagram,
			})
		}
		groups = append(groups, g)
	}

	vm := rosterVM{
		BaseVM: viewdata.NewBaseVM(r, "Concejales", "/"),
		Groups: groups,
	}

	templates.Render(w, r, "concejales", vm)
}
