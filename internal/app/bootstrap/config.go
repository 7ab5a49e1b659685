// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for campusfolio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, firebase_project_id, etc.
//   - Environment variables: CAMPUSFOLIO_MONGO_URI, CAMPUSFOLIO_FIREBASE_PROJECT_ID, etc.
//   - Command-line flags: --mongo_uri, --firebase_project_id, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "campusfolio", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Identity provider (Firebase) configuration. The API key and the
	// rest of the web config are public by design; only the project id
	// is required for token verification.
	{Name: "firebase_project_id", Default: "", Desc: "Firebase project id (token issuer/audience)"},
	{Name: "firebase_api_key", Default: "", Desc: "Firebase public web API key"},
	{Name: "firebase_auth_domain", Default: "", Desc: "Firebase auth domain"},
	{Name: "firebase_storage_bucket", Default: "", Desc: "Firebase storage bucket"},
	{Name: "firebase_messaging_sender_id", Default: "", Desc: "Firebase messaging sender id"},
	{Name: "firebase_app_id", Default: "", Desc: "Firebase web app id"},

	{Name: "extra_allowed_domains", Default: "", Desc: "Extra allowed email domains (comma-separated)"},

	{Name: "base_url", Default: "http://localhost:3000", Desc: "Base URL the app is served from"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "CAMPUSFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		FirebaseProjectID:  appValues.String("firebase_project_id"),
		FirebaseAPIKey:     appValues.String("firebase_api_key"),
		FirebaseAuthDomain: appValues.String("firebase_auth_domain"),
		FirebaseStorage:    appValues.String("firebase_storage_bucket"),
		FirebaseSenderID:   appValues.String("firebase_messaging_sender_id"),
		FirebaseAppID:      appValues.String("firebase_app_id"),

		ExtraAllowedDomains: appValues.String("extra_allowed_domains"),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// campusfolio validates the MongoDB URI format to catch configuration
// errors early, before attempting to connect. The Firebase settings
// are optional: without a project id the profile-completion endpoint
// rejects every token, but the card API still works.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.FirebaseProjectID == "" {
		logger.Warn("firebase_project_id not set; authenticated profile completion is disabled")
	}

	return nil
}
