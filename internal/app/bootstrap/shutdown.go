// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown is invoked during WAFFLE's shutdown phase, after the HTTP
// server has stopped accepting new requests and existing requests have
// drained (or the shutdown timeout has elapsed).
//
// The catalog lives entirely in memory and holds no external
// connections, so there is nothing to close here beyond logging that
// the service stopped cleanly.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	logger.Info("streamscope stopped")
	return nil
}
