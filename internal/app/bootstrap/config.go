// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
const EnvVarPrefix = "STREAMSCOPE"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: dataset_path, session_name, etc.
//   - Environment variables: STREAMSCOPE_DATASET_PATH, STREAMSCOPE_SESSION_NAME, etc.
//   - Command-line flags: --dataset_path, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "dataset_path", Default: "data/catalog_cleaned.csv", Desc: "Path to the normalized catalog CSV"},
	{Name: "notes_path", Default: "", Desc: "Path to an optional HTML notes fragment for the home page"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Filter cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "streamscope-session", Desc: "Filter cookie name"},
	{Name: "session_domain", Default: "", Desc: "Filter cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "720h", Desc: "Filter cookie max age (e.g., 24h, 720h)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STREAMSCOPE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DatasetPath: appValues.String("dataset_path"),
		NotesPath:   appValues.String("notes_path"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 720*time.Hour),

		CSRFKey: appValues.String("csrf_key"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The dataset file must exist before we bother building anything else;
// a missing path here is almost always a deployment mistake.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.DatasetPath == "" {
		return fmt.Errorf("dataset_path must be set")
	}

	info, err := os.Stat(appCfg.DatasetPath)
	if err != nil {
		logger.Error("dataset file not accessible",
			zap.String("path", appCfg.DatasetPath),
			zap.Error(err))
		return fmt.Errorf("dataset file %q: %w", appCfg.DatasetPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("dataset path %q is a directory, expected a CSV file", appCfg.DatasetPath)
	}

	return nil
}
