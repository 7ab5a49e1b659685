// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers
// framework-level settings (ports, TLS, log level, CORS for the outer
// server, body limits); AppConfig is everything specific to campusfolio.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Identity provider (Firebase Authentication)
	FirebaseProjectID    string // Project id; also issuer/audience of ID tokens
	FirebaseAPIKey       string // Public browser API key (not a secret)
	FirebaseAuthDomain   string // e.g. campusfolio.firebaseapp.com
	FirebaseStorage      string // Storage bucket (optional, public)
	FirebaseSenderID     string // Messaging sender id (optional, public)
	FirebaseAppID        string // Web app id (optional, public)

	// Email domain allow-list: extra domains on top of the built-in
	// university catalog, comma-separated.
	ExtraAllowedDomains string

	// Base URL the app is served from (used in logs and absolute links).
	BaseURL string
}
