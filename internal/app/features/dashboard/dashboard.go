// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"

	errorsfeature "github.com/dalemusser/stratacard/internal/app/features/errors"
	statcardstore "github.com/dalemusser/stratacard/internal/app/store/statcards"
	"github.com/dalemusser/stratacard/internal/app/system/cardrender"
	"github.com/dalemusser/stratacard/internal/app/system/timeouts"
	"github.com/dalemusser/stratacard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides dashboard handlers.
type Handler struct {
	store  *statcardstore.Store
	errLog *errorsfeature.ErrorLogger
	pages  *errorsfeature.Handler
	logger *zap.Logger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:  statcardstore.New(db),
		errLog: errLog,
		pages:  errorsfeature.NewHandler(),
		logger: logger,
	}
}

// DashboardVM is the view model for the dashboard.
type DashboardVM struct {
	viewdata.BaseVM
	Cards []cardrender.Item
}

// Routes returns a chi.Router with dashboard routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showDashboard)
	r.Get("/grid", h.grid)
	return r
}

// RedirectHome sends / to the dashboard.
func RedirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *Handler) load(r *http.Request) ([]cardrender.Item, error) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "dashboard.list")
	defer cancel()

	cards, err := h.store.List(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to list stat cards", err)
		return nil, err
	}
	return cardrender.Items(cards, h.logger), nil
}

// showDashboard renders every saved card in a grid.
func (h *Handler) showDashboard(w http.ResponseWriter, r *http.Request) {
	items, err := h.load(r)
	if err != nil {
		h.pages.InternalError(w, r)
		return
	}

	vm := DashboardVM{BaseVM: viewdata.New(r), Cards: items}
	vm.Title = "Dashboard"
	templates.Render(w, r, "dashboard/index", vm)
}

// grid renders only the card grid, for htmx polling.
func (h *Handler) grid(w http.ResponseWriter, r *http.Request) {
	items, err := h.load(r)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	templates.RenderSnippet(w, "dashboard/grid", DashboardVM{Cards: items})
}
