// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/stratacard/internal/app/system/jsonutil"
	"github.com/dalemusser/stratacard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger logs request-scoped failures with the request path and method.
type ErrorLogger struct {
	logger *zap.Logger
}

// NewErrorLogger creates a new ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{logger: logger}
}

// Log logs err under msg.
func (e *ErrorLogger) Log(r *http.Request, msg string, err error) {
	e.LogWithFields(r, msg, err)
}

// LogWithFields logs err under msg with additional fields.
func (e *ErrorLogger) LogWithFields(r *http.Request, msg string, err error, fields ...zap.Field) {
	all := append([]zap.Field{
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	}, fields...)
	e.logger.Error(msg, all...)
}

// Handler renders error pages.
type Handler struct{}

// NewHandler creates a new error Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// wantsJSON reports whether r came from an API client rather than a browser page.
func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}

// NotFound renders the 404 page. It is installed as the router's NotFound
// handler, so API paths answer with a JSON error instead.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		jsonutil.NotFound(w, "not found")
		return
	}
	vm := viewdata.NewBaseVM(r, "Not Found", "/dashboard")
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "errors/not_found", vm)
}

// InternalError renders the 500 page.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	if wantsJSON(r) {
		jsonutil.InternalError(w, "internal error")
		return
	}
	vm := viewdata.NewBaseVM(r, "Server Error", "/dashboard")
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "errors/internal", vm)
}
