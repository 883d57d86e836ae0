package bootstrap

import (
	"testing"

	"github.com/ceitm/platform/internal/domain/models"
	"github.com/ceitm/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestStartup_SeedsSuperAdmin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	appCfg := AppConfig{
		SuperAdminEmail:    "admin@ceitm.mx",
		SuperAdminPassword: "cámbiame-en-producción",
		SuperAdminName:     "Administrador CEITM",
	}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	var user models.User
	err := db.Collection("users").FindOne(ctx, bson.M{"email": "admin@ceitm.mx"}).Decode(&user)
	if err != nil {
		t.Fatalf("failed to find seeded superadmin: %v", err)
	}

	if user.Role != models.RoleAdminSys {
		t.Errorf("expected role %q, got %q", models.RoleAdminSys, user.Role)
	}
	if user.AreaID != "SISTEMAS" {
		t.Errorf("expected area SISTEMAS, got %q", user.AreaID)
	}
	if !user.Active {
		t.Error("expected seeded superadmin to be active")
	}
}

func TestStartup_SkipsSeedWithoutPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	appCfg := AppConfig{SuperAdminEmail: "admin@ceitm.mx"}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no users seeded, got %d", n)
	}
}

func TestStartup_KeepsExistingAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoDatabase: db}
	appCfg := AppConfig{
		SuperAdminEmail:    "admin@ceitm.mx",
		SuperAdminPassword: "cámbiame-en-producción",
		SuperAdminName:     "Administrador CEITM",
	}

	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("first Startup failed: %v", err)
	}
	if err := Startup(ctx, nil, appCfg, deps, testLogger()); err != nil {
		t.Fatalf("second Startup failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": "admin@ceitm.mx"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected a single superadmin account, got %d", n)
	}
}
