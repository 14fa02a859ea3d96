// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// Values come from config files, STRATACARD_* environment variables or
// command-line flags (see LoadConfig). Framework settings such as ports,
// TLS, logging and CORS live in WAFFLE's CoreConfig instead.
type AppConfig struct {
	// MongoDB connection
	MongoURI         string
	MongoDatabase    string
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// CSRF token signing key (32+ bytes in production)
	CSRFKey string

	// Display name shown in the page header
	SiteName string

	// Insert the demo card set when the dashboard is empty
	SeedDemoCards bool

	// Accept caller-supplied SVG icon markup (sanitized) in the builder and API
	AllowCustomIcons bool

	// Deadline for a single store call from a handler
	QueryTimeout time.Duration

	// JSON API
	APIMaxBodyBytes   int64
	APIAllowedOrigins []string // empty allows any origin
}
