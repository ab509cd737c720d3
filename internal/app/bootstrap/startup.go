// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/streamscope/internal/app/resources"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after the dataset is loaded, but before the HTTP
// handler is built and requests are served.
//
// The only one-time work this app needs is registering the shared
// templates with the template engine. The catalog itself is loaded in
// ConnectDB so that a bad dataset fails startup as early as possible.
//
// Returning a non-nil error will abort startup and prevent the server
// from starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	return nil
}
