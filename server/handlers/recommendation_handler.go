package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"compass-server/logging"
	"compass-server/models"
	services "compass-server/service"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
	logger                zerolog.Logger
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		logger:                logging.ComponentLogger("recommendation_handler"),
	}
}

// Recommend handles POST /v1/recommendations. A panic anywhere in the filter
// chain is converted into a 500 so one bad request cannot take the process
// down.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error().Interface("panic", rec).Msg("recommendation flow panicked")
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Internal server error",
				"message": "recommendation flow failed",
			})
		}
	}()

	var prefs models.SurveyPreferences
	if !decodeBody(w, r, &prefs) {
		return
	}
	if len(prefs.Cravings) == 0 {
		writeError(w, http.StatusBadRequest, "At least one craving must be selected")
		return
	}

	recommended, totalFiltered := h.recommendationService.Recommend(prefs)

	writeJSON(w, http.StatusOK, models.RecommendationResponse{
		Count:         len(recommended),
		TotalFiltered: totalFiltered,
		Restaurants:   recommended,
		Preferences:   prefs,
	})
}
