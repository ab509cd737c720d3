// internal/app/bootstrap/dataset.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/streamscope/internal/app/store/catalog"
	"github.com/dalemusser/streamscope/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Deps holds the backend dependencies for this WAFFLE app.
//
// This struct is created in ConnectDB and passed to subsequent lifecycle
// hooks: Startup, BuildHandler, and Shutdown. The app has no database;
// its one backend is the catalog loaded from the dataset CSV, held
// in memory for the life of the process.
type Deps struct {
	// Catalog is the in-memory title catalog loaded from the dataset CSV.
	Catalog *catalog.Store
}

// ConnectDB loads the dataset into the in-memory catalog store.
//
// WAFFLE calls this after configuration is loaded but before Startup and
// BuildHandler. There is no database to connect to; the dataset CSV plays
// that role. Loading happens once here so every handler shares one
// immutable snapshot of the catalog.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	store, err := catalog.Load(appCfg.DatasetPath, logger)
	if err != nil {
		return Deps{}, fmt.Errorf("load dataset %q: %w", appCfg.DatasetPath, err)
	}
	if store.Len() == 0 {
		return Deps{}, fmt.Errorf("dataset %q contains no titles", appCfg.DatasetPath)
	}

	info := viewdata.DatasetInfo{
		Path:         appCfg.DatasetPath,
		Titles:       store.Len(),
		CountryCount: len(store.Countries()),
		GenreCount:   store.GenreCount(),
	}
	if min, max, ok := store.YearRange(); ok {
		info.YearMin = min
		info.YearMax = max
	}
	viewdata.SetDatasetInfo(info)

	logger.Info("loaded catalog dataset",
		zap.String("path", appCfg.DatasetPath),
		zap.Int("titles", store.Len()),
		zap.Int("countries", info.CountryCount),
		zap.Int("genres", info.GenreCount),
	)

	return Deps{Catalog: store}, nil
}
