package statcards

import (
	"errors"
	"net/http"

	"github.com/dalemusser/stratacard/internal/app/store/storeutil"
	"github.com/dalemusser/stratacard/internal/app/system/cardrender"
	"github.com/dalemusser/stratacard/internal/app/system/inputval"
	"github.com/dalemusser/stratacard/internal/app/system/jsonutil"
	"github.com/dalemusser/stratacard/internal/app/system/statcard"
	"github.com/dalemusser/stratacard/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// apiRender renders the posted props and answers {"html": "..."}.
func (h *Handler) apiRender(w http.ResponseWriter, r *http.Request) {
	var req apiCardRequest
	if err := jsonutil.DecodeLimited(w, r, &req, h.cfg.MaxBodyBytes); err != nil {
		if errors.Is(err, jsonutil.ErrBodyTooLarge) {
			jsonutil.Error(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		jsonutil.BadRequest(w, err.Error())
		return
	}

	p, res, err := inputval.ValidateCard(req.input(), h.cfg.AllowCustomIcons)
	if res.HasErrors() {
		jsonutil.ValidationError(w, res.Fields())
		return
	}
	if err != nil {
		field := "icon"
		if req.IconSVG != "" {
			field = "icon_svg"
		}
		jsonutil.ValidationError(w, map[string]string{field: err.Error()})
		return
	}

	html, err := statcard.HTML(p)
	if err != nil {
		h.errLog.Log(r, "failed to render stat card", err)
		jsonutil.InternalError(w, "render failed")
		return
	}
	jsonutil.OK(w, apiRenderResponse{HTML: string(html)})
}

// apiList answers the saved cards with their rendered HTML. ?limit and
// ?page select one page; without them every card is returned.
func (h *Handler) apiList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Query(), h.logger, "statcards.api_list")
	defer cancel()

	q := r.URL.Query()
	page := storeutil.ParsePage(q.Get("limit"), q.Get("page"))
	cards, err := h.store.ListPage(ctx, page)
	if err != nil {
		h.errLog.Log(r, "failed to list stat cards", err)
		jsonutil.InternalError(w, "failed to list cards")
		return
	}

	resp := apiListResponse{Cards: make([]apiCard, 0, len(cards)), Page: page.Number, Limit: page.Limit}
	for _, c := range cards {
		item := apiCard{
			Key:        c.Key,
			Title:      c.Title,
			Value:      c.Value,
			Subtitle:   c.Subtitle,
			Icon:       c.Icon,
			Trend:      c.Trend,
			TrendValue: c.TrendValue,
			Variant:    c.Variant,
			Position:   c.Position,
		}
		if c.IconSVG != "" {
			item.Icon = "custom"
		}
		html, err := cardrender.Saved(c)
		if err != nil {
			h.errLog.LogWithFields(r, "failed to render stat card", err, zap.String("key", c.Key))
		} else {
			item.HTML = string(html)
		}
		resp.Cards = append(resp.Cards, item)
	}
	jsonutil.OK(w, resp)
}
