// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for app environment variables.
const EnvVarPrefix = "STRATACARD"

// appConfigKeys are loaded through WAFFLE's config layer:
//   - config files: mongo_uri, site_name, ...
//   - environment: STRATACARD_MONGO_URI, STRATACARD_SITE_NAME, ...
//   - flags: --mongo_uri, --site_name, ...
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "stratacard", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	{Name: "site_name", Default: "StrataCard", Desc: "Site name shown in the page header"},
	{Name: "seed_demo_cards", Default: true, Desc: "Insert demo cards when the dashboard is empty"},
	{Name: "allow_custom_icons", Default: false, Desc: "Accept sanitized custom SVG icons"},
	{Name: "query_timeout", Default: "5s", Desc: "Deadline for a single database call from a handler"},

	{Name: "api_max_body_bytes", Default: 65536, Desc: "Max JSON request body size for the card API"},
	{Name: "api_allowed_origins", Default: "", Desc: "Comma-separated CORS origins for the card API (blank allows any)"},
}

// LoadConfig loads WAFFLE core config and the app keys above.
// Precedence is flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CSRFKey: appValues.String("csrf_key"),

		SiteName:         appValues.String("site_name"),
		SeedDemoCards:    appValues.Bool("seed_demo_cards"),
		AllowCustomIcons: appValues.Bool("allow_custom_icons"),
		QueryTimeout:     appValues.Duration("query_timeout", 5*time.Second),

		APIMaxBodyBytes:   int64(appValues.Int("api_max_body_bytes")),
		APIAllowedOrigins: splitList(appValues.String("api_allowed_origins")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects settings the app cannot start with.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(appCfg)
}

func validateAppConfig(appCfg AppConfig) error {
	var problems []string
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		problems = append(problems, "mongo_database must not be empty")
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize && appCfg.MongoMaxPoolSize > 0 {
		problems = append(problems, "mongo_min_pool_size must not exceed mongo_max_pool_size")
	}
	if len(appCfg.CSRFKey) < 32 {
		problems = append(problems, "csrf_key must be at least 32 characters")
	}
	if appCfg.QueryTimeout <= 0 {
		problems = append(problems, "query_timeout must be positive")
	}
	if appCfg.APIMaxBodyBytes <= 0 {
		problems = append(problems, "api_max_body_bytes must be positive")
	}
	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// splitList parses a comma-separated setting, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
