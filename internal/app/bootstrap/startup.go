// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"github.com/lumenadvising/lumenhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// LumenHub uses it to apply the configured database deadlines.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(appCfg.DBTimeoutPing, appCfg.DBTimeoutShort, appCfg.DBTimeoutMedium, appCfg.DBTimeoutLong)
	return nil
}
