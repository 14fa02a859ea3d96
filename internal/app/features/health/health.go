// internal/app/features/health/health.go
package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/stratacard/internal/app/system/jsonutil"
	"github.com/dalemusser/stratacard/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Pinger is satisfied by *mongo.Client.
type Pinger interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

// CardCounter reports how many cards are saved. Optional.
type CardCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Handler provides health check endpoints.
type Handler struct {
	db     Pinger
	cards  CardCounter
	logger *zap.Logger
}

// NewHandler creates a new health check Handler. cards may be nil.
func NewHandler(db Pinger, cards CardCounter, logger *zap.Logger) *Handler {
	return &Handler{db: db, cards: cards, logger: logger}
}

// Response is the body of the full health check.
type Response struct {
	Status    string            `json:"status"`
	Services  map[string]string `json:"services,omitempty"`
	StatCards *int64            `json:"stat_cards,omitempty"`
}

// Routes mounts /, /ready and /live; bootstrap mounts it under /health.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds the readiness and liveness aliases /ready, /readyz and /livez.
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

func (h *Handler) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	return h.db.Ping(ctx, readpref.Primary())
}

// Check pings MongoDB and, when it is up, reports the saved card count.
// A failed ping answers 503 with status "degraded".
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{Status: "ok", Services: map[string]string{}}

	if err := h.ping(r.Context()); err != nil {
		resp.Status = "degraded"
		resp.Services["mongodb"] = "unavailable"
		h.logger.Warn("health check: mongodb ping failed", zap.Error(err))
		jsonutil.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.Services["mongodb"] = "ok"

	if h.cards != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
		defer cancel()
		if n, err := h.cards.Count(ctx); err == nil {
			resp.StatCards = &n
		} else {
			h.logger.Warn("health check: count stat cards failed", zap.Error(err))
		}
	}

	jsonutil.OK(w, resp)
}

// Ready answers 200 once MongoDB is reachable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.ping(r.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		jsonutil.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	jsonutil.OK(w, map[string]string{"status": "ready"})
}

// Live always answers 200 while the process is serving.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	jsonutil.OK(w, map[string]string{"status": "alive"})
}
