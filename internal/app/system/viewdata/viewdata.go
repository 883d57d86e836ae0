// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/ceitm/platform/internal/app/system/authz"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains the common fields every page view model embeds.
//
// Usage:
//
//	type listVM struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	vm := listVM{
//	    BaseVM: viewdata.NewBaseVM(r, "Convenios", "/"),
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	Role       string
	UserName   string
	IsAdmin    bool // user holds at least one admin capability

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	CSRFToken string
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	return BaseVM{
		SiteName:    models.DefaultSiteName,
		IsLoggedIn:  signedIn,
		Role:        role,
		UserName:    name,
		IsAdmin:     authz.HasAnyAdminCapability(r),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
	}
}
