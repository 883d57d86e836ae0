package userstore_test

import (
	"errors"
	"testing"

	userstore "github.com/ceitm/platform/internal/app/store/users"
	"github.com/ceitm/platform/internal/app/system/indexes"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/ceitm/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func setupStore(t *testing.T) (*userstore.Store, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	if err := indexes.Ensure(ctx, db, zap.NewNop()); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return userstore.New(db), db
}

func TestStore_Create_HashesPassword(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		Email:    "Vocal@CEITM.mx",
		FullName: "Vocal de Prueba",
		Role:     models.RoleVocal,
		Active:   true,
	}, "contrasena-segura")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if u.Email != "vocal@ceitm.mx" {
		t.Errorf("expected lowercased email, got %q", u.Email)
	}
	if u.HashedPassword == "" || u.HashedPassword == "contrasena-segura" {
		t.Error("expected password to be hashed")
	}
	if u.CreatedAt.IsZero() || u.UpdatedAt.IsZero() {
		t.Error("expected Create to stamp CreatedAt and UpdatedAt")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := models.User{
		Email:    "dup@ceitm.mx",
		FullName: "Original",
		Role:     models.RoleVocal,
		Active:   true,
	}
	if _, err := store.Create(ctx, base, "contrasena-segura"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	base.FullName = "Impostor"
	_, err := store.Create(ctx, base, "otra-contrasena")
	if !errors.Is(err, userstore.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_Create_ShortPassword(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		Email:    "corto@ceitm.mx",
		FullName: "Contraseña Corta",
		Role:     models.RoleVocal,
	}, "corta")
	if err == nil {
		t.Fatal("expected error for short password")
	}
}

func TestStore_Authenticate(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.User{
		Email:    "login@ceitm.mx",
		FullName: "Usuaria Login",
		Role:     models.RoleEstructura,
		Active:   true,
	}, "contrasena-segura"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	u, err := store.Authenticate(ctx, "login@ceitm.mx", "contrasena-segura")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if u.Role != models.RoleEstructura {
		t.Errorf("Role: got %q", u.Role)
	}

	if _, err := store.Authenticate(ctx, "login@ceitm.mx", "incorrecta"); !errors.Is(err, userstore.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for wrong password, got %v", err)
	}
	if _, err := store.Authenticate(ctx, "nadie@ceitm.mx", "contrasena-segura"); !errors.Is(err, userstore.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for unknown email, got %v", err)
	}
}

func TestStore_Authenticate_InactiveUser(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		Email:    "baja@ceitm.mx",
		FullName: "Cuenta Dada de Baja",
		Role:     models.RoleVocal,
		Active:   true,
	}, "contrasena-segura")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.SetActive(ctx, u.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	if _, err := store.Authenticate(ctx, "baja@ceitm.mx", "contrasena-segura"); !errors.Is(err, userstore.ErrBadCredentials) {
		t.Fatalf("expected ErrBadCredentials for inactive user, got %v", err)
	}
}

func TestStore_EnsureSuperAdmin_Idempotent(t *testing.T) {
	store, _ := setupStore(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureSuperAdmin(ctx, "admin@ceitm.mx", "admin-inicial", "Admin CEITM"); err != nil {
		t.Fatalf("EnsureSuperAdmin failed: %v", err)
	}
	if err := store.EnsureSuperAdmin(ctx, "admin@ceitm.mx", "otra-clave-123", "Otro Nombre"); err != nil {
		t.Fatalf("second EnsureSuperAdmin failed: %v", err)
	}

	u, err := store.GetByEmail(ctx, "admin@ceitm.mx")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Role != models.RoleAdminSys {
		t.Errorf("Role: got %q, want %q", u.Role, models.RoleAdminSys)
	}
	if u.FullName != "Admin CEITM" {
		t.Errorf("second call overwrote the existing admin: %q", u.FullName)
	}
}

func TestFetcher_FetchSessionUser(t *testing.T) {
	store, db := setupStore(t)
	fetcher := userstore.NewFetcher(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		Email:    "fresca@ceitm.mx",
		FullName: "Sesión Fresca",
		Role:     models.RoleCoordinador,
		AreaID:   "EVENTOS",
		Active:   true,
	}, "contrasena-segura")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	su, err := fetcher.FetchSessionUser(ctx, u.ID.Hex())
	if err != nil {
		t.Fatalf("FetchSessionUser failed: %v", err)
	}
	if su == nil {
		t.Fatal("expected session user, got nil")
	}
	if su.Role != models.RoleCoordinador || su.AreaID != "EVENTOS" {
		t.Errorf("unexpected session user: %+v", su)
	}

	// Deactivation takes effect on the next fetch.
	if err := store.SetActive(ctx, u.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	su, err = fetcher.FetchSessionUser(ctx, u.ID.Hex())
	if err != nil {
		t.Fatalf("FetchSessionUser failed: %v", err)
	}
	if su != nil {
		t.Error("expected nil session user for inactive account")
	}

	// Malformed IDs are treated as signed out, not as errors.
	su, err = fetcher.FetchSessionUser(ctx, "not-an-object-id")
	if err != nil || su != nil {
		t.Errorf("malformed id: got (%v, %v), want (nil, nil)", su, err)
	}
}
