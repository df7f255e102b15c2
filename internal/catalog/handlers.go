package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/archimart/quote-api/internal/common"
)

// Handler exposes read-only catalog endpoints.
type Handler struct{}

// Configurations handles GET /api/v1/catalog/configurations.
func (h Handler) Configurations(w http.ResponseWriter, _ *http.Request) {
	common.JSON(w, http.StatusOK, map[string]any{"data": Configs()})
}

// Options handles GET /api/v1/catalog/configurations/{id}/options. It returns
// the colour set, shape set, and add-ons applicable to the configuration's
// category.
func (h Handler) Options(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cfg, ok := ConfigByID(id)
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "configuration not found", map[string]any{"id": id})
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"data": map[string]any{
			"configuration": cfg,
			"colors":        ColorsFor(cfg.Category),
			"shapes":        ShapesFor(cfg.Category),
			"addons":        AddonsFor(cfg.Category),
		},
	})
}
