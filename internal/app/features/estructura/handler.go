// internal/app/features/estructura/handler.go
package estructura

import (
	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/system/auditlog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the public organizational structure pages: the coordination
// grids and the per-area representative modal.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

// NewHandler constructs the public structure handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}

// AdminHandler owns the roster management handlers (list, new, edit,
// delete of council members). Constructed once at startup in bootstrap.
type AdminHandler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

// NewAdminHandler constructs an AdminHandler bound to the given Mongo
// database and logger.
func NewAdminHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{DB: db, Log: logger, ErrLog: errLog, AuditLog: audit}
}
