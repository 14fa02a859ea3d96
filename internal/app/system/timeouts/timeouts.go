// Package timeouts holds the request-scoped deadlines handlers apply to
// database work. Bootstrap sets them from configuration once at startup.
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Defaults used until Configure is called.
const (
	DefaultPing  = 2 * time.Second
	DefaultQuery = 5 * time.Second
)

var (
	mu    sync.RWMutex
	ping  = DefaultPing
	query = DefaultQuery
)

// Config holds timeout values. Zero fields keep the current value.
type Config struct {
	Ping  time.Duration
	Query time.Duration
}

// Ping is the deadline for health-check pings.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Query is the deadline for a single store call from a handler.
func Query() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return query
}

// Configure applies the non-zero values of cfg.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Query > 0 {
		query = cfg.Query
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	query = DefaultQuery
}

// WithTimeout derives a context with the given deadline. The returned cancel
// logs a warning when the deadline was hit.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
