// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and request body limits. AppConfig is where
// everything specific to the CEITM site lives: the MongoDB connection,
// session cookies, upload storage, audit logging, and the bootstrap
// superadmin account.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: ceitm-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Upload storage configuration
	StorageLocalPath string // Local directory for uploaded images (e.g., "./uploads")
	StorageLocalURL  string // URL prefix for serving uploaded files (e.g., "/files")

	// Base URL for absolute links (e.g., "https://ceitm.mx")
	BaseURL string

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogAuth  string
	AuditLogAdmin string

	// SuperAdmin bootstrap account, created on startup if missing.
	// Seeding is skipped when the password is blank.
	SuperAdminEmail    string
	SuperAdminPassword string
	SuperAdminName     string
}
