package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"compass-server/config"
	"compass-server/logging"
	"compass-server/models"
	"compass-server/models/restaurant"
	services "compass-server/service"
)

type SearchHandler struct {
	searchService *services.SearchService
	logger        zerolog.Logger
}

func NewSearchHandler(searchService *services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logging.ComponentLogger("search_handler"),
	}
}

// Search handles POST /v1/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var request models.SearchRequest
	if !decodeBody(w, r, &request) {
		return
	}

	query := buildSearchQuery(request)
	results := h.searchService.Search(query)

	h.logger.Debug().
		Str("query_text", query.QueryText).
		Int("results", len(results)).
		Msg("search served")

	// The response body is the bare array of augmented records
	writeJSON(w, http.StatusOK, results)
}

// buildSearchQuery applies the downtown-default location, radius and sort key
// for any field the request leaves out.
func buildSearchQuery(request models.SearchRequest) models.SearchQuery {
	query := models.SearchQuery{
		UserLocation: restaurant.Coordinates{
			Latitude:  config.DEFAULT_USER_LATITUDE,
			Longitude: config.DEFAULT_USER_LONGITUDE,
		},
		QueryText:    request.QueryText,
		RadiusKm:     config.DEFAULT_SEARCH_RADIUS_KM,
		PriceRange:   request.PriceRange,
		SortBy:       models.SortByDistance,
		OpenNow:      request.OpenNow,
		Cuisines:     request.Cuisines,
		SpecialFlags: request.SpecialFlags,
	}
	if request.UserLatitude != nil {
		query.UserLocation.Latitude = *request.UserLatitude
	}
	if request.UserLongitude != nil {
		query.UserLocation.Longitude = *request.UserLongitude
	}
	if request.RadiusKm != nil {
		query.RadiusKm = *request.RadiusKm
	}
	if request.SortBy != "" {
		query.SortBy = request.SortBy
	}
	return query
}
