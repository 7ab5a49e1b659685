// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	authconfigfeature "github.com/bmitrev/campusfolio/internal/app/features/authconfig"
	cardsfeature "github.com/bmitrev/campusfolio/internal/app/features/cards"
	feedfeature "github.com/bmitrev/campusfolio/internal/app/features/feed"
	healthfeature "github.com/bmitrev/campusfolio/internal/app/features/health"
	profilefeature "github.com/bmitrev/campusfolio/internal/app/features/profile"
	cardstore "github.com/bmitrev/campusfolio/internal/app/store/cards"
	profilestore "github.com/bmitrev/campusfolio/internal/app/store/profiles"
	"github.com/bmitrev/campusfolio/internal/app/system/identity"
	"github.com/bmitrev/campusfolio/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app. WAFFLE calls this after configuration, DB connections,
// schema setup, and Startup have completed.
//
// campusfolio mounts:
//   - the server-rendered feed at /
//   - the JSON card API under /api/cards
//   - the authenticated profile-completion endpoint under /api/user/profile
//   - the public identity config at /api/firebase-config
//   - static assets under /static and a health check at /health
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Server-rendered feed
	feedHandler := feedfeature.NewHandler(cardstore.New(deps.MongoDatabase), logger)
	r.Mount("/", feedfeature.Routes(feedHandler))

	// JSON API. The original deployment served the browser client from
	// other origins during development, so the API tree is CORS-open.
	r.Route("/api", func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))

		// Throttle card and profile submissions per client IP.
		limiter := ratelimit.New(10, time.Minute)
		api.Use(limiter.Middleware)

		cardsHandler := cardsfeature.NewHandler(cardstore.New(deps.MongoDatabase), logger)
		api.Mount("/cards", cardsfeature.Routes(cardsHandler))

		verifier := identity.NewTokenVerifier(appCfg.FirebaseProjectID, identity.NewGoogleCerts(nil))
		profileHandler := profilefeature.NewHandler(profilestore.New(deps.MongoDatabase), verifier, logger)
		api.Mount("/user/profile", profilefeature.Routes(profileHandler))

		authcfgHandler := authconfigfeature.NewHandler(authconfigfeature.WebConfig{
			APIKey:            appCfg.FirebaseAPIKey,
			AuthDomain:        appCfg.FirebaseAuthDomain,
			ProjectID:         appCfg.FirebaseProjectID,
			StorageBucket:     appCfg.FirebaseStorage,
			MessagingSenderID: appCfg.FirebaseSenderID,
			AppID:             appCfg.FirebaseAppID,
		}, logger)
		api.Mount("/firebase-config", authconfigfeature.Routes(authcfgHandler))
	})

	return r, nil
}
