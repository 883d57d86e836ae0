package rosterstore_test

import (
	"errors"
	"testing"

	rosterstore "github.com/ceitm/platform/internal/app/store/roster"
	"github.com/ceitm/platform/internal/domain/models"
	"github.com/ceitm/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m, err := store.Create(ctx, models.CouncilMember{
		FullName: "Ana García",
		Role:     models.RoleCoordinador,
		AreaID:   "COMUNICACION",
		Active:   true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if m.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if m.FullNameCI == "" {
		t.Error("expected FullNameCI to be set")
	}
	if m.CreatedAt.IsZero() || m.UpdatedAt.IsZero() {
		t.Error("expected Create to stamp CreatedAt and UpdatedAt")
	}
}

func TestStore_Create_MissingRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.CouncilMember{FullName: "Sin Rol"}); err == nil {
		t.Fatal("expected error for missing role")
	}
}

func TestStore_List_RosterOrderIsInsertionOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCouncilMember(ctx, "Primero", models.RoleCoordinador, "EVENTOS")
	fx.CreateCouncilMember(ctx, "Segundo", models.RoleVocal, "EVENTOS")
	fx.CreateCouncilMember(ctx, "Tercero", models.RoleConcejal, "")

	got, err := store.List(ctx, rosterstore.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 members, got %d", len(got))
	}
	for i, want := range []string{"Primero", "Segundo", "Tercero"} {
		if got[i].FullName != want {
			t.Errorf("position %d: got %q, want %q", i, got[i].FullName, want)
		}
	}
}

func TestStore_List_FilterByRoleAndArea(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateCouncilMember(ctx, "Coordinadora Eventos", models.RoleCoordinador, "EVENTOS")
	fx.CreateCouncilMember(ctx, "Vocal Eventos", models.RoleVocal, "EVENTOS")
	fx.CreateCouncilMember(ctx, "Coordinador Becas", models.RoleCoordinador, "BECAS")

	got, err := store.List(ctx, rosterstore.Filter{Role: models.RoleCoordinador, AreaID: "EVENTOS"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 || got[0].FullName != "Coordinadora Eventos" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestStore_SetActive_HidesFromList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := fx.CreateCouncilMember(ctx, "Saliente", models.RoleVocal, "EVENTOS")

	if err := store.SetActive(ctx, m.ID, false); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	got, err := store.List(ctx, rosterstore.Filter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty roster, got %d members", len(got))
	}
}

func TestStore_Update_CanClearArea(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := fx.CreateCouncilMember(ctx, "Rotando", models.RoleVocal, "EVENTOS")

	if err := store.Update(ctx, m.ID, models.CouncilMember{AreaID: ""}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.AreaID != "" {
		t.Errorf("expected cleared AreaID, got %q", got.AreaID)
	}
}

func TestStore_Delete_NotFoundAfter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := rosterstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	m := fx.CreateCouncilMember(ctx, "Temporal", models.RoleVocal, "EVENTOS")

	if _, err := store.Delete(ctx, m.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, m.ID); !errors.Is(err, rosterstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
