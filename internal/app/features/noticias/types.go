// internal/app/features/noticias/types.go
package noticias

import (
	"html/template"
	"time"

	"github.com/ceitm/platform/internal/app/system/paging"
	"github.com/ceitm/platform/internal/app/system/viewdata"
	"github.com/ceitm/platform/internal/domain/models"
)

// ======================== PUBLIC VIEW MODELS ========================

// newsCard is one announcement card on the public noticias list.
type newsCard struct {
	Slug          string
	Title         string
	CategoryLabel string
	Excerpt       string
	ImageURL      string
	PublishedAt   time.Time
}

// listVM provides template data for the public noticias list page and for
// the HTMX card-grid snippet.
type listVM struct {
	viewdata.BaseVM

	Category   string
	Categories []models.CategoryInfo
	Items      []newsCard

	Page  paging.Result
	Range paging.Range
	Start int
}

// detailVM provides template data for one announcement page.
type detailVM struct {
	viewdata.BaseVM

	Slug          string
	NewsTitle     string
	CategoryLabel string
	Content       template.HTML
	ImageURL      string
	VideoURL      string
	PublishedAt   time.Time
}

// ========================= ADMIN VIEW MODELS ========================

// adminRow is a summary row in the admin noticias table.
type adminRow struct {
	ID            string
	Title         string
	Slug          string
	CategoryLabel string
	Published     bool
	CreatedAt     time.Time
}

// adminListVM provides template data for the admin noticias list.
type adminListVM struct {
	viewdata.BaseVM

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
	Slug   string

	NewsTitle string
	Category  string
	Excerpt   string
	Content   string
	ImageURL  string
	VideoURL  string
	Published bool

	Categories []models.CategoryInfo

	ErrorMsg string
}
