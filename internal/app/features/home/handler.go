// internal/app/features/home/handler.go
package home

import (
	"context"
	"net/http"
	"time"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	newsstore "github.com/ceitm/platform/internal/app/store/news"
	"github.com/ceitm/platform/internal/app/system/timeouts"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}

type newsTeaser struct {
	Slug        string
	Title       string
	Excerpt     string
	ImageURL    string
	PublishedAt time.Time
}

type homeVM struct {
	viewdata.BaseVM

	Latest []newsTeaser
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders the landing page with the three most recent published
// noticias. A failed news load degrades to an empty teaser strip rather
// than taking the whole landing page down.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var latest []newsTeaser
	rows, err := newsstore.New(h.DB).List(ctx, newsstore.Filter{}, 0, 3)
	if err != nil {
		h.Log.Warn("landing: load latest noticias failed", zap.Error(err))
	} else {
		for _, n := range rows {
			latest = append(latest, newsTeaser{
				Slug:        n.Slug,
				Title:       n.Title,
				Excerpt:     n.Excerpt,
				ImageURL:    n.DisplayImageURL(),
				PublishedAt: n.CreatedAt,
			})
		}
	}

	vm := homeVM{
		BaseVM: viewdata.NewBaseVM(r, "Inicio", "/"),
		Latest: latest,
	}

	templates.Render(w, r, "home", vm)
}
