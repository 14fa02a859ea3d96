package statcards

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the builder routes; bootstrap mounts them at /statcards.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/preview", h.preview)
	r.Get("/{key}", h.show)
	r.Post("/{key}", h.update)
	r.Get("/{key}/edit", h.edit)
	r.Post("/{key}/delete", h.delete)
	return r
}

// APIRoutes returns the JSON routes; bootstrap mounts them at /api/statcards.
func APIRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.apiList)
	r.Post("/render", h.apiRender)
	return r
}
