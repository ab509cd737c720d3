// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"

	dashboardfeature "github.com/dalemusser/streamscope/internal/app/features/dashboard"
	"github.com/dalemusser/streamscope/internal/app/features/errorpages"
	explorefeature "github.com/dalemusser/streamscope/internal/app/features/explore"
	exportfeature "github.com/dalemusser/streamscope/internal/app/features/export"
	filtersfeature "github.com/dalemusser/streamscope/internal/app/features/filters"
	healthfeature "github.com/dalemusser/streamscope/internal/app/features/health"
	homefeature "github.com/dalemusser/streamscope/internal/app/features/home"
	appresources "github.com/dalemusser/streamscope/internal/app/resources"
	"github.com/dalemusser/streamscope/internal/app/system/apicors"
	"github.com/dalemusser/streamscope/internal/app/system/filterstate"
	"github.com/dalemusser/streamscope/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, dataset loading, and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the loaded catalog bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// Route map:
//   - /           home page
//   - /dashboard  server-rendered dashboard
//   - /filters    saved-filter save/clear (POST, CSRF-protected)
//   - /export     filtered CSV download
//   - /api        JSON chart endpoints (CSRF-exempt, read-only)
//   - /health     health checks
//   - /assets     embedded static assets
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the saved-filter cookie manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	filterMgr, err := filterstate.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("filter cookie manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger and error page handler.
	errLog := errorpages.NewErrorLogger(logger)
	pageHandler := errorpages.NewHandler()

	r := chi.NewRouter()

	// Global middleware (applies to ALL routes)

	// Panic recovery: log the panic and render the 500 page.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", req.URL.Path),
					)
					pageHandler.InternalError(w, req)
				}
			}()
			next.ServeHTTP(w, req)
		})
	})

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// CSRF protection middleware with path-based exemption for the read-only
	// API and export routes. Cookie name is "streamscope_csrf" to avoid
	// collisions with other services on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("streamscope_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip the GET-only JSON API and CSV export.
	// Those routes never mutate state and are meant to be linkable.
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			path := req.URL.Path
			if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/export/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Catalog, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// CSV export gets a longer timeout than page handlers; everything
	// else shares the standard handler timeout.
	exportHandler := exportfeature.NewHandler(deps.Catalog, errLog, logger)
	r.Route("/export", func(sr chi.Router) {
		sr.Use(chimw.Timeout(timeouts.Export))
		sr.Mount("/", exportfeature.Routes(exportHandler))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(chimw.Timeout(timeouts.Handler))

		// Public pages
		homeHandler := homefeature.NewHandler(deps.Catalog, appCfg.NotesPath, logger)
		gr.Mount("/", homefeature.Routes(homeHandler))

		// Dashboard
		dashboardHandler := dashboardfeature.NewHandler(deps.Catalog, filterMgr, errLog, logger)
		gr.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		// Saved-filter save/clear (POST, CSRF-protected)
		filtersHandler := filtersfeature.NewHandler(filterMgr, errLog, logger)
		gr.Mount("/filters", filtersfeature.Routes(filtersHandler))

		// JSON chart API (CSRF-exempt above; read-only, permissive CORS)
		exploreHandler := explorefeature.NewHandler(deps.Catalog, logger)
		gr.Route("/api", func(ar chi.Router) {
			ar.Use(apicors.Middleware())
			ar.Mount("/", explorefeature.Routes(exploreHandler))
		})
	})

	// 404 catch-all for unmatched routes
	r.NotFound(pageHandler.NotFound)

	return r, nil
}
