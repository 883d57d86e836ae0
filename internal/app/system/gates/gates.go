// Package gates provides handler-level authorization checks. Route-level
// middleware (auth.SessionManager.RequireSignedIn / RequireRole) handles the
// coarse cases; gates are for handlers whose requirement is a capability
// rather than a role, such as the admin convenio and noticia surfaces.
// A failed gate renders the restricted-access page and returns OK=false;
// permission denial is an expected terminal state, not an error.
package gates

import (
	"net/http"

	uierrors "github.com/ceitm/platform/internal/app/features/errors"
	"github.com/ceitm/platform/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Result contains the outcome of a gate check.
type Result struct {
	Role   string
	Name   string
	UserID primitive.ObjectID
	OK     bool
}

// RequireAuth ensures a user is authenticated, rendering the sign-in page
// prompt otherwise.
func RequireAuth(w http.ResponseWriter, r *http.Request, loginURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, loginURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequireCapability ensures the user is authenticated and holds the named
// capability. Handlers must not attempt any load when OK=false; the
// restricted-access view has already been rendered.
func RequireCapability(w http.ResponseWriter, r *http.Request, capability, forbiddenMsg, fallbackURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return Result{OK: false}
	}
	if !authz.Has(r, capability) {
		uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}
