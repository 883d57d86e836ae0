package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ceitm/platform/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateConvenio creates an active test convenio in the given category.
func (f *Fixtures) CreateConvenio(ctx context.Context, name, category string) models.Convenio {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Convenio{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Category:  category,
		ShortText: "Descuento de prueba",
		LongText:  "Detalle largo del convenio de prueba.",
		Benefits:  []string{"10% de descuento"},
		Active:    true,
		CreatedAt: now,
		UpdatedAt: &now,
	}

	if _, err := f.db.Collection("convenios").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test convenio: %v", err)
	}
	return c
}

// CreateNews creates a published test news item with the given slug.
func (f *Fixtures) CreateNews(ctx context.Context, title, slug, category string) models.NewsItem {
	f.t.Helper()

	now := time.Now().UTC()
	n := models.NewsItem{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Slug:      slug,
		Category:  category,
		Excerpt:   "Resumen de prueba",
		Content:   "<p>Contenido de prueba.</p>",
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("noticias").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("failed to create test news item: %v", err)
	}
	return n
}

// CreateCouncilMember creates an active test council member with the given
// role bound to a coordination area.
func (f *Fixtures) CreateCouncilMember(ctx context.Context, fullName, role, areaID string) models.CouncilMember {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.CouncilMember{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Role:       role,
		AreaID:     areaID,
		Career:     "Ing. en Sistemas",
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("council_members").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test council member: %v", err)
	}
	return m
}

// CreateUser creates an active test user with the given role and password.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role, password string) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:             primitive.NewObjectID(),
		Email:          email,
		FullName:       fullName,
		FullNameCI:     text.Fold(fullName),
		HashedPassword: string(hash),
		Role:           role,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateCoordinatorUser creates an active coordinador user bound to the given
// coordination area.
func (f *Fixtures) CreateCoordinatorUser(ctx context.Context, fullName, email, areaID, password string) models.User {
	f.t.Helper()

	u := f.CreateUser(ctx, fullName, email, models.RoleCoordinador, password)
	if _, err := f.db.Collection("users").UpdateByID(ctx, u.ID,
		map[string]interface{}{"$set": map[string]interface{}{"area_id": areaID}}); err != nil {
		f.t.Fatalf("failed to set coordinator area: %v", err)
	}
	u.AreaID = areaID
	return u
}

// CreateInactiveConvenio creates a deactivated convenio, which public
// listings must not show.
func (f *Fixtures) CreateInactiveConvenio(ctx context.Context, name, category string) models.Convenio {
	f.t.Helper()

	c := f.CreateConvenio(ctx, name, category)
	if _, err := f.db.Collection("convenios").UpdateByID(ctx, c.ID,
		map[string]interface{}{"$set": map[string]interface{}{"active": false}}); err != nil {
		f.t.Fatalf("failed to deactivate test convenio: %v", err)
	}
	c.Active = false
	return c
}
