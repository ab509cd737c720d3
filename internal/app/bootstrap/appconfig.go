// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives:
// where the normalized catalog CSV is, and how the saved-filter cookie
// is signed.
type AppConfig struct {
	// DatasetPath is the normalized catalog CSV the dashboard serves from.
	// The file is the sole input; it is read once at startup.
	DatasetPath string

	// NotesPath is an optional HTML fragment shown on the home page
	// (operator notes about the current dataset). Blank disables it.
	NotesPath string

	// Saved-filter cookie configuration
	SessionKey    string        // Secret key for signing the filter cookie (must be strong in production)
	SessionName   string        // Cookie name (default: streamscope-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Maximum cookie lifetime (default: 720h)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)
}
