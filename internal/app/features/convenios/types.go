// internal/app/features/convenios/types.go
package convenios

import (
	"html/template"

	"github.com/ceitm/platform/internal/app/system/paging"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
)

// ======================== PUBLIC VIEW MODELS ========================

// cardVM is one business card in the public directory grid.
type cardVM struct {
	ID            string
	Name          string
	Category      string
	CategoryLabel string
	ShortText     string
	ImageURL      string
}

// directoryVM provides template data for the public directory page and for
// the HTMX grid snippet re-rendered on every filter change.
type directoryVM struct {
	viewdata.BaseVM

	Q          string
	Category   string
	Categories []models.CategoryInfo
	Items      []cardVM
	Total      int
}

// modalVM provides template data for the detail modal of one convenio.
type modalVM struct {
	ID            string
	Name          string
	CategoryLabel string
	ShortText     string
	LongText      template.HTML
	ImageURL      string
	Address       string
	Benefits      []string
	Social        models.SocialLinks
}

// ========================= ADMIN VIEW MODELS ========================

// adminRow is a summary row in the admin convenios table.
type adminRow struct {
	ID            string
	Name          string
	CategoryLabel string
	ShortText     string
	Active        bool
}

// adminListVM provides template data for the admin convenios list.
type adminListVM struct {
	viewdata.BaseVM

	Q     string
	Items []adminRow

	Page  paging.Result
	Range paging.Range
	Start int
}

// formVM backs both the New and Edit forms.
type formVM struct {
	viewdata.BaseVM

	IsEdit bool
	ID     string

	Name      string
	Category  string
	ShortText string
	LongText  string
	ImageURL  string
	Address   string
	Benefits  []string
	Web       string
	Facebook  string
	Instagram string
	Active    bool

	Categories []models.CategoryInfo

	ErrorMsg     string
	SubmitReturn string
	DeleteReturn string
}
