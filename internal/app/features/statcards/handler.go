// internal/app/features/statcards/handler.go
package statcards

import (
	"errors"
	"net/http"
	"net/url"

	errorsfeature "github.com/dalemusser/stratacard/internal/app/features/errors"
	statcardstore "github.com/dalemusser/stratacard/internal/app/store/statcards"
	"github.com/dalemusser/stratacard/internal/app/system/cardrender"
	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/stratacard/internal/app/system/timeouts"
	"github.com/dalemusser/stratacard/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps JSON request bodies when Config leaves it unset.
const DefaultMaxBodyBytes = 64 << 10

// Handler serves the card builder and the card JSON API.
type Handler struct {
	store  *statcardstore.Store
	cfg    Config
	errLog *errorsfeature.ErrorLogger
	pages  *errorsfeature.Handler
	logger *zap.Logger
}

// NewHandler creates a new statcards Handler.
func NewHandler(db *mongo.Database, cfg Config, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		store:  statcardstore.New(db),
		cfg:    cfg,
		errLog: errLog,
		pages:  errorsfeature.NewHandler(),
		logger: logger,
	}
}

// formInput reads a card definition from query or form values.
func formInput(v url.Values) inputval.CardInput {
	return inputval.CardInput{
		Title:      v.Get("title"),
		Value:      v.Get("value"),
		Subtitle:   v.Get("subtitle"),
		Icon:       v.Get("icon"),
		IconSVG:    v.Get("icon_svg"),
		Trend:      v.Get("trend"),
		TrendValue: v.Get("trend_value"),
		Variant:    v.Get("variant"),
	}
}

// validate runs input validation and icon resolution, returning the first
// problem as a user-facing message.
func (h *Handler) validate(in inputval.CardInput) (statcard.Props, string) {
	p, res, err := inputval.ValidateCard(in, h.cfg.AllowCustomIcons)
	if res.HasErrors() {
		return statcard.Props{}, res.First()
	}
	if err != nil {
		return statcard.Props{}, "Icon: " + err.Error() + "."
	}
	return p, ""
}

// list renders the builder page with every saved card.
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	vm := ListVM{Form: inputval.CardInput{Variant: string(statcard.VariantDefault)}}

	switch r.URL.Query().Get("success") {
	case "created":
		vm.Success = "Card saved"
	case "updated":
		vm.Success = "Card updated"
	case "deleted":
		vm.Success = "Card deleted"
	}

	h.renderList(w, r, http.StatusOK, vm)
}

// renderList loads saved cards into vm and renders the builder page.
func (h *Handler) renderList(w http.ResponseWriter, r *http.Request, status int, vm ListVM) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.list")
	defer cancel()

	cards, err := h.store.List(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to list stat cards", err)
		h.pages.InternalError(w, r)
		return
	}

	vm.BaseVM = viewdata.NewBaseVM(r, "Card builder", "/dashboard")
	vm.Cards = cardrender.Items(cards, h.logger)
	vm.Options = newFormOptions(h.cfg.AllowCustomIcons)

	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	templates.Render(w, r, "statcards/list", vm)
}

// preview renders the card described by the query string as a bare fragment.
// Invalid input answers 422 with a message fragment.
func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	p, msg := h.validate(formInput(r.URL.Query()))
	if msg != "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusUnprocessableEntity)
		templates.RenderSnippet(w, "statcards/preview_error", previewErrorVM{Message: msg})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := statcard.Render(w, p); err != nil {
		h.errLog.Log(r, "failed to write card preview", err)
	}
}

// create validates the builder form and saves the card.
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := formInput(r.PostForm).Normalize()
	if _, msg := h.validate(in); msg != "" {
		h.renderList(w, r, http.StatusUnprocessableEntity, ListVM{Form: in, Error: msg})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.create")
	defer cancel()

	card, err := h.store.Create(ctx, in.StatCard())
	if err != nil {
		h.errLog.Log(r, "failed to create stat card", err)
		h.renderList(w, r, http.StatusInternalServerError, ListVM{Form: in, Error: "Failed to save card"})
		return
	}

	h.logger.Info("stat card created", zap.String("key", card.Key), zap.String("title", card.Title))
	http.Redirect(w, r, "/statcards?success=created", http.StatusSeeOther)
}

// show renders one saved card as a bare fragment.
func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.show")
	defer cancel()

	card, err := h.store.GetByKey(ctx, key)
	if errors.Is(err, statcardstore.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.errLog.LogWithFields(r, "failed to load stat card", err, zap.String("key", key))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := cardrender.Saved(card)
	if err != nil {
		h.errLog.LogWithFields(r, "failed to render stat card", err, zap.String("key", key))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// edit renders the builder prefilled with a saved card.
func (h *Handler) edit(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.edit")
	defer cancel()

	card, err := h.store.GetByKey(ctx, key)
	if errors.Is(err, statcardstore.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.errLog.LogWithFields(r, "failed to load stat card", err, zap.String("key", key))
		h.pages.InternalError(w, r)
		return
	}

	h.renderList(w, r, http.StatusOK, ListVM{Form: inputval.FromStatCard(card), EditKey: key})
}

// update validates the builder form and replaces a saved card's fields.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	in := formInput(r.PostForm).Normalize()
	if _, msg := h.validate(in); msg != "" {
		h.renderList(w, r, http.StatusUnprocessableEntity, ListVM{Form: in, EditKey: key, Error: msg})
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.update")
	defer cancel()

	err := h.store.Update(ctx, key, in.StatCard())
	if errors.Is(err, statcardstore.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.errLog.LogWithFields(r, "failed to update stat card", err, zap.String("key", key))
		h.renderList(w, r, http.StatusInternalServerError, ListVM{Form: in, EditKey: key, Error: "Failed to save card"})
		return
	}

	h.logger.Info("stat card updated", zap.String("key", key), zap.String("title", in.Title))
	http.Redirect(w, r, "/statcards?success=updated", http.StatusSeeOther)
}

// delete removes a saved card.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.delete")
	defer cancel()

	err := h.store.Delete(ctx, key)
	if errors.Is(err, statcardstore.ErrNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.errLog.LogWithFields(r, "failed to delete stat card", err, zap.String("key", key))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("stat card deleted", zap.String("key", key))
	http.Redirect(w, r, "/statcards?success=deleted", http.StatusSeeOther)
}
