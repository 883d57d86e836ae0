// internal/app/features/adminusers/handler.go
package adminusers

import (
	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/system/auditlog"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the platform account management handlers (list, new, edit,
// enable/disable, delete). Accounts are what sign in to the admin surface;
// the public roster is managed separately under estructura.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
	AuditLog *auditlog.Logger
}

// NewHandler constructs a Handler bound to the given Mongo database.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog, AuditLog: audit}
}

// accountRoles lists the assignable platform roles for the account form.
var accountRoles = []models.CategoryInfo{
	{ID: models.RoleAdminSys, Label: "Administrador de sistemas"},
	{ID: models.RoleEstructura, Label: "Mesa directiva"},
	{ID: models.RoleCoordinador, Label: "Coordinador"},
	{ID: models.RoleConcejal, Label: "Concejal"},
	{ID: models.RoleVocal, Label: "Vocal"},
}

func roleLabel(role string) string {
	for _, r := range accountRoles {
		if r.ID == role {
			return r.Label
		}
	}
	return role
}

// listRow is a summary row in the accounts table.
type listRow struct {
	ID        string
	FullName  string
	Email     string
	RoleLabel string
	AreaLabel string
	Active    bool
}

// listVM provides template data for the accounts list.
type listVM struct {
	viewdata.BaseVM

	Items []listRow
}

// formVM backs both the New and Edit account forms.
type formVM struct {
	viewdata.BaseVM

	IsEdit bool
	ID     string

	FullName string
	Email    string
	Role     string
	AreaID   string
	Active   bool

	Roles []models.CategoryInfo
	Areas []models.Coordination

	ErrorMsg string
}
