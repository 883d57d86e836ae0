package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ceitm/platform/internal/app/store/audit"
	"github.com/ceitm/platform/internal/app/system/auditlog"
	"github.com/ceitm/platform/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestLogger_NilLogger(t *testing.T) {
	// nil logger should be a no-op (not panic)
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("GET", "/", nil)

	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.LoginSuccess(ctx, req, primitive.NewObjectID(), "nadie@ceitm.mx")
	logger.Logout(ctx, req, primitive.NewObjectID())
}

func TestLogger_Log_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Auth: "off", Admin: "off"})

	actorID := primitive.NewObjectID()
	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		ActorID:   &actorID,
		Success:   true,
	})

	events, err := store.GetByActor(ctx, actorID, 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(events) != 0 {
		t.Error("expected no events when config is 'off'")
	}
}

func TestLogger_Log_ConfigDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Auth: "db", Admin: "db"})

	actorID := primitive.NewObjectID()
	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		ActorID:   &actorID,
		Success:   true,
	})

	events, err := store.GetByActor(ctx, actorID, 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("expected 1 event, got %d", len(events))
	}
}

func TestLogger_Log_ConfigLogOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Auth: "log", Admin: "log"})

	actorID := primitive.NewObjectID()
	logger.Log(ctx, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		ActorID:   &actorID,
		Success:   true,
	})

	events, err := store.GetByActor(ctx, actorID, 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(events) != 0 {
		t.Error("expected no DB events when config is 'log'")
	}
}

func TestLogger_AdminAction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Auth: "all", Admin: "all"})

	actorID := primitive.NewObjectID()
	resourceID := primitive.NewObjectID()
	req := httptest.NewRequest("POST", "/admin/convenios", nil)

	logger.AdminAction(ctx, req, audit.EventConvenioCreated, actorID, resourceID,
		map[string]string{"name": "Tacos El Inge"})

	events, err := store.GetByActor(ctx, actorID, 10)
	if err != nil {
		t.Fatalf("GetByActor failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.EventType != audit.EventConvenioCreated {
		t.Errorf("EventType: got %q", ev.EventType)
	}
	if ev.ResourceID == nil || *ev.ResourceID != resourceID {
		t.Error("expected resource ID to be recorded")
	}
	if ev.Details["name"] != "Tacos El Inge" {
		t.Errorf("Details: got %v", ev.Details)
	}
}

func TestLogger_LoginFailed_RecordsReason(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Auth: "all", Admin: "all"})

	req := httptest.NewRequest("POST", "/login", nil)
	logger.LoginFailed(ctx, req, "intruso@ceitm.mx", "wrong password")

	events, err := store.Query(ctx, audit.QueryFilter{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginFailed,
		Limit:     10,
	})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].FailureReason != "wrong password" {
		t.Errorf("FailureReason: got %q", events[0].FailureReason)
	}
	if events[0].Success {
		t.Error("expected Success=false")
	}
}
