// internal/app/features/convenios/handler.go
package convenios

import (
	"context"
	"time"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	conveniostore "github.com/ceitm/platform/internal/app/store/convenios"
	"github.com/ceitm/platform/internal/app/system/auditlog"
	"github.com/ceitm/platform/internal/app/system/listing"
	"github.com/ceitm/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// cacheMaxAge bounds how stale the public directory snapshot may get before
// the next request refreshes it. Admin mutations invalidate immediately, so
// this only matters for writes done outside the admin surface.
const cacheMaxAge = 30 * time.Second

// NewCache builds the shared snapshot cache of active convenios that backs
// the public directory. Bootstrap creates one and hands it to both the
// public and the admin handler so mutations can invalidate it.
func NewCache(db *mongo.Database) *listing.Cache[models.Convenio] {
	store := conveniostore.New(db)
	fetch := func(ctx context.Context) ([]models.Convenio, error) {
		return store.List(ctx, conveniostore.Filter{})
	}
	return listing.NewCache(fetch, cacheMaxAge)
}

// Handler owns the public convenio directory (list, filter, detail modal).
type Handler struct {
	DB     *mongo.Database
	Cache  *listing.Cache[models.Convenio]
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the public directory handler.
func NewHandler(db *mongo.Database, cache *listing.Cache[models.Convenio], errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Cache: cache, Log: logger, ErrLog: errLog}
}

// AdminHandler owns the admin convenio handlers (list, new, edit, delete).
//
// It is constructed once at startup in bootstrap, using the shared Mongo
// database handle and logger.
type AdminHandler struct {
	DB       *mongo.Database
	Cache    *listing.Cache[models.Convenio]
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

// NewAdminHandler constructs an AdminHandler bound to the given Mongo
// database and the public directory cache it must invalidate on mutation.
func NewAdminHandler(db *mongo.Database, cache *listing.Cache[models.Convenio], errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		DB:       db,
		Cache:    cache,
		Log:      logger,
		ErrLog:   errLog,
		AuditLog: audit,
	}
}
