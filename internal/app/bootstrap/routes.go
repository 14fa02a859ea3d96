// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	dashboardfeature "github.com/dalemusser/stratacard/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/stratacard/internal/app/features/errors"
	healthfeature "github.com/dalemusser/stratacard/internal/app/features/health"
	statcardsfeature "github.com/dalemusser/stratacard/internal/app/features/statcards"
	appresources "github.com/dalemusser/stratacard/internal/app/resources"
	statcardstore "github.com/dalemusser/stratacard/internal/app/store/statcards"
	"github.com/dalemusser/stratacard/internal/app/system/apicors"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// csrfExemptPrefix covers the JSON API. Browsers posting there carry no
// form token and the API changes no stored state.
const csrfExemptPrefix = "/api/"

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup and
// Startup have completed.
//
// Route layout:
//   - /dashboard          card grid (/ redirects here)
//   - /statcards          card builder, preview and saved cards (CSRF)
//   - /api/statcards      JSON render API (no CSRF, permissive CORS)
//   - /health, /ready...  health checks
//   - /assets/*           embedded CSS and JS
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	// Dev mode enables template reloading.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware
	// ─────────────────────────────────────────────────────────────────────────────

	r.Use(chimw.Timeout(30 * time.Second))

	// CORS must run before anything that could reject a preflight.
	r.Use(middleware.CORSFromConfig(coreCfg))

	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	r.Use(csrfMiddleware(appCfg.CSRFKey, secure, logger))

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	cards := statcardstore.New(deps.MongoDatabase)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, cards, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Embedded assets bundled into the binary
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	statcardsHandler := statcardsfeature.NewHandler(deps.MongoDatabase, statcardsfeature.Config{
		AllowCustomIcons: appCfg.AllowCustomIcons,
		MaxBodyBytes:     appCfg.APIMaxBodyBytes,
	}, errLog, logger)
	r.Mount("/statcards", statcardsfeature.Routes(statcardsHandler))

	r.Route("/api/statcards", func(sr chi.Router) {
		sr.Use(apicors.Middleware(appCfg.APIAllowedOrigins...))
		sr.Mount("/", statcardsfeature.APIRoutes(statcardsHandler))
	})

	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))
	r.Get("/", dashboardfeature.RedirectHome)

	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// csrfMiddleware wraps gorilla/csrf and skips it for the JSON API.
// The cookie name is app-specific so it does not collide with other
// services on the same domain.
func csrfMiddleware(key string, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	opts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("stratacard_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			if req.Header.Get("HX-Request") == "true" {
				w.Header().Set("HX-Refresh", "true")
				w.WriteHeader(http.StatusForbidden)
				return
			}
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins.
	if !secure {
		opts = append(opts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	protect := csrf.Protect([]byte(key), opts...)

	return func(next http.Handler) http.Handler {
		protected := protect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if strings.HasPrefix(req.URL.Path, csrfExemptPrefix) {
				next.ServeHTTP(w, req)
				return
			}
			protected.ServeHTTP(w, req)
		})
	}
}
