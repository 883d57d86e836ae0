// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	sharedviews "github.com/ceitm/platform/internal/app/features/shared/views"
	userstore "github.com/ceitm/platform/internal/app/store/users"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It is the
// place to load shared resources (like templates), warm caches, or perform
// any app-wide setup that depends on config and backends.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	sharedviews.LoadSharedTemplates()

	// Seed the superadmin account so a fresh install always has a way
	// into the admin panel. Skipped when no password is configured.
	if appCfg.SuperAdminEmail == "" || appCfg.SuperAdminPassword == "" {
		logger.Warn("superadmin seeding skipped: superadmin_email or superadmin_password not set")
		return nil
	}
	users := userstore.New(deps.MongoDatabase)
	if err := users.EnsureSuperAdmin(ctx, appCfg.SuperAdminEmail, appCfg.SuperAdminPassword, appCfg.SuperAdminName); err != nil {
		logger.Error("superadmin seeding failed", zap.Error(err))
		return err
	}
	return nil
}
