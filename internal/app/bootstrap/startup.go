// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"strings"

	"github.com/bmitrev/campusfolio/internal/app/system/domains"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.ExtraAllowedDomains != "" {
		extra := strings.Split(appCfg.ExtraAllowedDomains, ",")
		domains.Configure(extra)
		logger.Info("extended email domain allow-list",
			zap.Int("extra_domains", len(extra)))
	}
	return nil
}
