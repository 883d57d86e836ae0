// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	acercafeature "github.com/ceitm/platform/internal/app/features/acerca"
	adminfeature "github.com/ceitm/platform/internal/app/features/admin"
	adminusersfeature "github.com/ceitm/platform/internal/app/features/adminusers"
	avisofeature "github.com/ceitm/platform/internal/app/features/aviso"
	concejalesfeature "github.com/ceitm/platform/internal/app/features/concejales"
	contactofeature "github.com/ceitm/platform/internal/app/features/contacto"
	conveniosfeature "github.com/ceitm/platform/internal/app/features/convenios"
	errorsfeature "github.com/ceitm/platform/internal/app/features/errors"
	estructurafeature "github.com/ceitm/platform/internal/app/features/estructura"
	healthfeature "github.com/ceitm/platform/internal/app/features/health"
	homefeature "github.com/ceitm/platform/internal/app/features/home"
	loginfeature "github.com/ceitm/platform/internal/app/features/login"
	logoutfeature "github.com/ceitm/platform/internal/app/features/logout"
	noticiasfeature "github.com/ceitm/platform/internal/app/features/noticias"
	uploadsfeature "github.com/ceitm/platform/internal/app/features/uploads"
	"github.com/ceitm/platform/internal/app/store/audit"
	userstore "github.com/ceitm/platform/internal/app/store/users"
	"github.com/ceitm/platform/internal/app/system/auditlog"
	"github.com/ceitm/platform/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The CEITM site mounts the public pages (home, convenios, noticias,
// estructura, concejales), the session-backed login flow, and the
// capability-gated admin panel under /admin.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Set up the UserFetcher so LoadSessionUser fetches fresh user data on each request.
	// This ensures role changes, disabled accounts, and profile updates take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// Audit logger: auth and admin events go to MongoDB and/or zap
	// depending on config.
	auditLogger := auditlog.New(audit.New(deps.MongoDatabase), logger, auditlog.Config{
		Auth:  appCfg.AuditLogAuth,
		Admin: appCfg.AuditLogAdmin,
	})

	// Local storage backend for uploaded images.
	fileStore, err := storage.NewLocal(storage.LocalConfig{BasePath: appCfg.StorageLocalPath})
	if err != nil {
		logger.Error("upload storage init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection for the login and admin forms. Templates embed the
	// token via viewdata.NewBaseVM.
	r.Use(csrf.Protect([]byte(appCfg.SessionKey), csrf.Secure(secure), csrf.Path("/")))

	// Error pages. The NotFound handler is registered before any Mount so
	// chi propagates it into the mounted subrouters.
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Uploaded images (convenio logos, noticia covers, member photos)
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	acercaHandler := acercafeature.NewHandler(logger)
	r.Mount("/acerca", acercafeature.Routes(acercaHandler))

	contactoHandler := contactofeature.NewHandler(logger)
	r.Mount("/contacto", contactofeature.Routes(contactoHandler))

	avisoHandler := avisofeature.NewHandler(logger)
	r.Mount("/aviso-de-privacidad", avisofeature.Routes(avisoHandler))

	// The convenio cache is shared between the public directory and the
	// admin handlers so admin mutations invalidate the public snapshot.
	convenioCache := conveniosfeature.NewCache(deps.MongoDatabase)

	conveniosHandler := conveniosfeature.NewHandler(deps.MongoDatabase, convenioCache, errLog, logger)
	r.Mount("/convenios", conveniosfeature.Routes(conveniosHandler))

	noticiasHandler := noticiasfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/noticias", noticiasfeature.Routes(noticiasHandler))

	estructuraHandler := estructurafeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/estructura", estructurafeature.Routes(estructuraHandler))

	concejalesHandler := concejalesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/concejales", concejalesfeature.Routes(concejalesHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, auditLogger, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, auditLogger, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Admin panel
	adminHandler := adminfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler, sessionMgr))

	adminConveniosHandler := conveniosfeature.NewAdminHandler(deps.MongoDatabase, convenioCache, errLog, auditLogger, logger)
	r.Mount("/admin/convenios", conveniosfeature.AdminRoutes(adminConveniosHandler, sessionMgr))

	adminNoticiasHandler := noticiasfeature.NewAdminHandler(deps.MongoDatabase, errLog, auditLogger, logger)
	r.Mount("/admin/noticias", noticiasfeature.AdminRoutes(adminNoticiasHandler, sessionMgr))

	adminEstructuraHandler := estructurafeature.NewAdminHandler(deps.MongoDatabase, errLog, auditLogger, logger)
	r.Mount("/admin/estructura", estructurafeature.AdminRoutes(adminEstructuraHandler, sessionMgr))

	adminUsersHandler := adminusersfeature.NewHandler(deps.MongoDatabase, errLog, auditLogger, logger)
	r.Mount("/admin/usuarios", adminusersfeature.Routes(adminUsersHandler, sessionMgr))

	uploadsHandler := uploadsfeature.NewHandler(fileStore, appCfg.StorageLocalURL, errLog, logger)
	r.Mount("/admin/uploads", uploadsfeature.Routes(uploadsHandler, sessionMgr))

	return r, nil
}
