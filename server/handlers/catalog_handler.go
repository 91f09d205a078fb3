package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"compass-server/dao/catalog"
	"compass-server/logging"
	"compass-server/util"
)

type CatalogHandler struct {
	catalogDao *catalog.CatalogDAO
	logger     zerolog.Logger
}

func NewCatalogHandler(catalogDao *catalog.CatalogDAO) *CatalogHandler {
	return &CatalogHandler{
		catalogDao: catalogDao,
		logger:     logging.ComponentLogger("catalog_handler"),
	}
}

// Health handles GET /v1/health.
func (h *CatalogHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"restaurants": h.catalogDao.Count(),
	})
}

// Map handles GET /v1/catalog/map, rendering an HTML chart of every venue.
func (h *CatalogHandler) Map(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotCatalogMap(h.catalogDao.All(), w); err != nil {
		h.logger.Error().Err(err).Msg("failed to render catalog map")
	}
}
