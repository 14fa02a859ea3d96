package testutil

import (
	"context"
	"net/http"
)

// csrfTokenKey matches the context key gorilla/csrf stores its token under.
const csrfTokenKey = "gorilla.csrf.Token"

// TestCSRFToken is the token WithCSRFToken injects.
const TestCSRFToken = "test-csrf-token-12345"

// WithCSRFToken puts a fixed CSRF token in the request context so handlers
// that call csrf.Token(r) (directly or through viewdata) render it without
// the csrf middleware in front of them.
func WithCSRFToken(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), csrfTokenKey, TestCSRFToken)
	return r.WithContext(ctx)
}
