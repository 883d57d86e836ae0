package testutil

import (
	"net/http"
	"net/http/httptest"

	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/ceitm/platform/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID     string
	Name   string
	Email  string
	Role   string
	AreaID string
}

// AdminUser returns a TestUser with the system admin role.
func AdminUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Admin",
		Email: "admin@test.com",
		Role:  models.RoleAdminSys,
	}
}

// EstructuraUser returns a TestUser with the estructura role.
func EstructuraUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Estructura",
		Email: "estructura@test.com",
		Role:  models.RoleEstructura,
	}
}

// CoordinadorUser returns a TestUser with the coordinador role bound to the
// given coordination area.
func CoordinadorUser(areaID string) TestUser {
	return TestUser{
		ID:     primitive.NewObjectID().Hex(),
		Name:   "Test Coordinador",
		Email:  "coordinador@test.com",
		Role:   models.RoleCoordinador,
		AreaID: areaID,
	}
}

// ConcejalUser returns a TestUser with the concejal role.
func ConcejalUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Concejal",
		Email: "concejal@test.com",
		Role:  models.RoleConcejal,
	}
}

// WithUser adds a user to the request context for testing authenticated handlers.
// This bypasses the session middleware and injects the user directly.
func WithUser(r *http.Request, user TestUser) *http.Request {
	sessionUser := &auth.SessionUser{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		AreaID: user.AreaID,
	}
	return auth.WithTestUser(r, sessionUser)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with the given user
// injected into its context.
func NewAuthenticatedRequest(method, target string, user TestUser) *http.Request {
	return WithUser(httptest.NewRequest(method, target, nil), user)
}
