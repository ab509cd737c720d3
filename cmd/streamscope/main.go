// cmd/streamscope/main.go
package main

import (
	"context"

	"github.com/dalemusser/streamscope/internal/app/bootstrap"
	"github.com/dalemusser/waffle/app"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	if err := app.Run(ctx, bootstrap.Hooks); err != nil {
		logger, _ := zap.NewProduction()
		defer logger.Sync()
		logger.Fatal("streamscope exited", zap.Error(err))
	}
}
