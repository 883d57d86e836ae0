// internal/app/features/estructura/types.go
package estructura

import (
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
)

// unitCard is one coordination tile on the structure page.
type unitCard struct {
	ID          string
	Label       string
	Description string
	Route       string
}

// structureVM provides template data for the public structure page.
type structureVM struct {
	viewdata.BaseVM

	Directiva  []unitCard
	Operativas []unitCard
}

// modalVM provides template data for the area representative modal.
// Vacant is an expected state; a failed roster load never reaches this
// view model and renders the error snippet instead.
type modalVM struct {
	UnitID      string
	UnitLabel   string
	Description string
	Route       string

	Vacant    bool
	FullName  string
	RoleLabel string
	Career    string
	ImageURL  string
	Instagram string
	Phone     string
}

// roleLabels maps role identifiers to their public display names.
var roleLabels = map[string]string{
	models.RoleAdminSys:    "Administrador de sistemas",
	models.RoleEstructura:  "Mesa directiva",
	models.RoleCoordinador: "Coordinador",
	models.RoleConcejal:    "Concejal",
	models.RoleVocal:       "Vocal",
}

func roleLabel(role string) string {
	if l, ok := roleLabels[role]; ok {
		return l
	}
	return role
}

// ========================= ADMIN VIEW MODELS ========================

// adminRow is a summary row in the admin roster table.
type adminRow struct {
	ID        string
	FullName  string
	RoleLabel string
	AreaLabel string
	Career    string
	Active    bool
}

// adminListVM provides template data for the admin roster list.
type adminListVM struct {
	viewdata.BaseVM

	Q     string
	Items []adminRow
}

// formVM backs both the New and Edit member forms.
type formVM struct {
	viewdata.BaseVM

	IsEdit bool
	ID     string

	FullName  string
	Role      string
	AreaID    string
	Career    string
	ImageURL  string
	Instagram string
	Phone     string
	Active    bool

	Roles []models.CategoryInfo
	Areas []models.Coordination

	ErrorMsg string
}

// memberRoles lists the assignable council roles for the member form.
var memberRoles = []models.CategoryInfo{
	{ID: models.RoleEstructura, Label: "Mesa directiva"},
	{ID: models.RoleCoordinador, Label: "Coordinador"},
	{ID: models.RoleConcejal, Label: "Concejal"},
	{ID: models.RoleVocal, Label: "Vocal"},
}
